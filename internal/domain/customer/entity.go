package customer

import "go.mongodb.org/mongo-driver/bson/primitive"

// Required form fields. Values must be non-empty and globally unique
// across customers.
const (
	FieldName   = "NAME"
	FieldEmail  = "EMAIL"
	FieldMobile = "MOBILE"
)

// UniqueFields lists the uniqueness checks in the order they run. The
// order is contractual: it decides which error a client sees for a
// record violating several constraints at once.
var UniqueFields = []string{FieldEmail, FieldMobile, FieldName}

// FieldValue is one slot of the dynamic customer form.
type FieldValue struct {
	Description string `bson:"DESCRIPTION" json:"DESCRIPTION"`
	Value       string `bson:"VALUE" json:"VALUE"`
}

// Customer is a schema-driven client record. Data holds the form
// fields keyed by field name; AttendanceData holds per-date billing
// linkage keyed by ISO date and is opaque to this service.
type Customer struct {
	ID             primitive.ObjectID                `bson:"_id,omitempty" json:"_id,omitempty"`
	CreatedOn      string                            `bson:"CREATED_ON,omitempty" json:"CREATED_ON,omitempty"`
	Data           map[string]FieldValue             `bson:"CUSTOMER_DATA" json:"CUSTOMER_DATA"`
	AttendanceData map[string]map[string]interface{} `bson:"ATTENDANCE_DATA,omitempty" json:"ATTENDANCE_DATA,omitempty"`
}

// FieldValueOf returns the VALUE of a named form field, or "" when the
// field is missing.
func (c Customer) FieldValueOf(field string) string {
	return c.Data[field].Value
}
