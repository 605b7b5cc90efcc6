package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNo generates a unique invoice number, e.g. INV-9F3A21CB
func GenerateInvoiceNo() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateOrderNo generates a unique purchase order number, e.g. PO-4D81EE02
func GenerateOrderNo() string {
	return "PO-" + strings.ToUpper(uuid.New().String()[:8])
}

// GeneratePartCode generates a unique part code for parts created without one
func GeneratePartCode() string {
	return "PART-" + strings.ToUpper(uuid.New().String()[:8])
}
