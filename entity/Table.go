package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
	TableMerged    = "merged"
)

type Table struct {
	gorm.Model
	TableNumber string `gorm:"uniqueIndex" json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
	IsOccupied  bool   `json:"isOccupied"`
	IsMerged    bool   `json:"isMerged"`

	SessionStart *time.Time `json:"sessionStart,omitempty"`

	// source table numbers when this table was created by a merge
	MergedTables []string `gorm:"serializer:json" json:"mergedTables,omitempty"`

	// walk-in / reservation metadata set by assign()
	CustomerName    string     `json:"customerName,omitempty"`
	PartySize       int        `json:"partySize,omitempty"`
	ReservationTime *time.Time `json:"reservationTime,omitempty"`
	SpecialRequest  string     `json:"specialRequest,omitempty"`

	// orders hold the foreign key; the "current order" is computed by query,
	// never stored here (avoids a table<->order ownership cycle)
	Orders []Order `json:"-"`
}
