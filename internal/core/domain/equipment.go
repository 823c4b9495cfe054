package domain

import "time"

// EquipmentStatus tracks the operational state of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentActive      EquipmentStatus = "Active"
	EquipmentUnderRepair EquipmentStatus = "Under Repair"
	EquipmentScrapped    EquipmentStatus = "Scrapped"
)

// Equipment is a maintainable asset. The request core only references it;
// the single cross-entity coupling is marking it scrapped when a request
// moves to Scrap.
type Equipment struct {
	ID               string          `json:"id" bson:"_id,omitempty"`
	Name             string          `json:"name" bson:"name"`
	Category         string          `json:"category" bson:"category"`
	SerialNumber     string          `json:"serial_number,omitempty" bson:"serial_number,omitempty"`
	Department       string          `json:"department,omitempty" bson:"department,omitempty"`
	Company          string          `json:"company" bson:"company"`
	AssignedEmployee string          `json:"assigned_employee,omitempty" bson:"assigned_employee,omitempty"`
	TechnicianID     string          `json:"technician_id,omitempty" bson:"technician_id,omitempty"`
	TeamID           string          `json:"team_id,omitempty" bson:"team_id,omitempty"`
	Location         string          `json:"location,omitempty" bson:"location,omitempty"`
	WorkCenter       string          `json:"work_center,omitempty" bson:"work_center,omitempty"`
	Status           EquipmentStatus `json:"status" bson:"status"`
	ScrapDate        time.Time       `json:"scrap_date,omitempty" bson:"scrap_date,omitempty"`
	Description      string          `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt        time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" bson:"updated_at"`
}

// MaintenanceTeam groups technicians responsible for a class of equipment.
type MaintenanceTeam struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Members   []string  `json:"members,omitempty" bson:"members,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// WorkCenter is a physical location where maintenance work is performed.
type WorkCenter struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Code      string    `json:"code,omitempty" bson:"code,omitempty"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
