package generator

import (
	"strings"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
)

// Layout is the recommended row range and seat letters for a cabin tier
type Layout struct {
	ClassType   models.ClassType `json:"classType"`
	RowStart    int              `json:"rowStart"`
	RowEnd      int              `json:"rowEnd"`
	SeatLetters []string         `json:"seatLetters"`
}

// Read-only; callers always receive a copy.
var recommendedLayouts = map[models.ClassType]Layout{
	models.ClassTypeFirst: {
		ClassType:   models.ClassTypeFirst,
		RowStart:    1,
		RowEnd:      2,
		SeatLetters: []string{"A", "B"},
	},
	models.ClassTypeBusiness: {
		ClassType:   models.ClassTypeBusiness,
		RowStart:    5,
		RowEnd:      10,
		SeatLetters: []string{"A", "B", "C", "D"},
	},
	models.ClassTypeEconomy: {
		ClassType:   models.ClassTypeEconomy,
		RowStart:    15,
		RowEnd:      35,
		SeatLetters: []string{"A", "B", "C", "D", "E", "F"},
	},
}

// ParseClassType matches s against the known class types, ignoring case
func ParseClassType(s string) (models.ClassType, bool) {
	for ct := range recommendedLayouts {
		if strings.EqualFold(string(ct), strings.TrimSpace(s)) {
			return ct, true
		}
	}
	return "", false
}

// RecommendedLayout returns the default layout for a class type
func RecommendedLayout(classType models.ClassType) (Layout, bool) {
	l, ok := recommendedLayouts[classType]
	if !ok {
		return Layout{}, false
	}
	l.SeatLetters = append([]string(nil), l.SeatLetters...)
	return l, true
}

// ConfigFromClass seeds an enabled SeatClassConfig for an existing seat class
// using its recommended layout. Unknown class types fall back to Economy.
func ConfigFromClass(classID string, classType models.ClassType, price float64) models.SeatClassConfig {
	l, ok := RecommendedLayout(classType)
	if !ok {
		l, _ = RecommendedLayout(models.ClassTypeEconomy)
	}
	return models.SeatClassConfig{
		ClassID:     classID,
		ClassType:   l.ClassType,
		RowStart:    l.RowStart,
		RowEnd:      l.RowEnd,
		SeatLetters: l.SeatLetters,
		Price:       price,
		Enabled:     true,
	}
}
