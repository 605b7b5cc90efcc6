package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// POStatus represents the status of a purchase order
type POStatus int

const (
	POStatusPending   POStatus = 0
	POStatusShipped   POStatus = 1
	POStatusReceived  POStatus = 2
	POStatusCancelled POStatus = 3
)

func (s POStatus) String() string {
	return [...]string{"PENDING", "SHIPPED", "RECEIVED", "CANCELLED"}[s]
}

func (s POStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *POStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = POStatus(i)
		return nil
	}
	switch str {
	case "PENDING":
		*s = POStatusPending
	case "SHIPPED":
		*s = POStatusShipped
	case "RECEIVED":
		*s = POStatusReceived
	case "CANCELLED":
		*s = POStatusCancelled
	}
	return nil
}

func (s POStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *POStatus) Scan(value interface{}) error {
	if value == nil {
		*s = POStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = POStatus(v)
	case int:
		*s = POStatus(v)
	}
	return nil
}

// ParsePOStatus maps a status name to its POStatus; ok is false for unknown names
func ParsePOStatus(name string) (POStatus, bool) {
	switch name {
	case "PENDING":
		return POStatusPending, true
	case "SHIPPED":
		return POStatusShipped, true
	case "RECEIVED":
		return POStatusReceived, true
	case "CANCELLED":
		return POStatusCancelled, true
	}
	return POStatusPending, false
}
