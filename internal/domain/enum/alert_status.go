package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AlertStatus represents the lifecycle state of a low-stock alert
type AlertStatus int

const (
	AlertStatusOpen         AlertStatus = 0
	AlertStatusAcknowledged AlertStatus = 1
	AlertStatusResolved     AlertStatus = 2
)

func (s AlertStatus) String() string {
	return [...]string{"OPEN", "ACKNOWLEDGED", "RESOLVED"}[s]
}

func (s AlertStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AlertStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = AlertStatus(i)
		return nil
	}
	switch str {
	case "OPEN":
		*s = AlertStatusOpen
	case "ACKNOWLEDGED":
		*s = AlertStatusAcknowledged
	case "RESOLVED":
		*s = AlertStatusResolved
	}
	return nil
}

// ParseAlertStatus maps a status name to its AlertStatus; ok is false for unknown names
func ParseAlertStatus(name string) (AlertStatus, bool) {
	switch name {
	case "OPEN":
		return AlertStatusOpen, true
	case "ACKNOWLEDGED":
		return AlertStatusAcknowledged, true
	case "RESOLVED":
		return AlertStatusResolved, true
	}
	return AlertStatusOpen, false
}

func (s AlertStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *AlertStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AlertStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = AlertStatus(v)
	case int:
		*s = AlertStatus(v)
	}
	return nil
}
