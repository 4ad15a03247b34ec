// Package model defines the persisted content types of the site.
package model

import "time"

// User is an admin account. Rows are created by out-of-band seeding and
// mutated only by password change.
type User struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Brand is an equipment manufacturer shown on the rental page.
// BrandImage holds the blob-store key of the logo, not raw bytes.
type Brand struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	BrandName  string    `json:"brandName" form:"brand_name"`
	BrandImage string    `json:"brandImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Equipment struct {
	Id             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	EquipmentName  string    `json:"equipmentName" form:"equipment_name"`
	Description    string    `json:"description" form:"description"`
	EquipmentImage string    `json:"equipmentImage"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Project always carries exactly two image keys.
type Project struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" form:"title"`
	Location  string    `json:"location" form:"location"`
	Images    []string  `json:"images" gorm:"serializer:json"`
	CreatedAt time.Time `json:"createdAt"`
}

type Milestone struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Year        string    `json:"year" form:"year"`
	Title       string    `json:"title" form:"title"`
	Description string    `json:"description" form:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CoreValue struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" form:"title"`
	Description string    `json:"description" form:"description"`
	Icon        string    `json:"icon" form:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MissionVision is a singleton document with upsert semantics.
type MissionVision struct {
	Id        int       `json:"id" gorm:"primaryKey"`
	Mission   string    `json:"mission" form:"mission"`
	Vision    string    `json:"vision" form:"vision"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Address is one office location embedded in the contact document.
type Address struct {
	OfficeType    string `json:"officeType"`
	Building      string `json:"building"`
	StreetAddress string `json:"streetAddress"`
	Subdivision   string `json:"subdivision"`
	Barangay      string `json:"barangay"`
	City          string `json:"city"`
	Province      string `json:"province"`
	Country       string `json:"country"`
	PostalCode    string `json:"postalCode"`
}

// Contact is a singleton document. The first read creates a default row
// when none exists.
type Contact struct {
	Id             int       `json:"id" gorm:"primaryKey"`
	MobilePhone    string    `json:"mobilePhone"`
	LandlineNumber string    `json:"landlineNumber"`
	Emails         []string  `json:"emails" gorm:"serializer:json"`
	FacebookLink   string    `json:"facebookLink"`
	GoogleMapsSrc  string    `json:"googleMapsSrc"`
	Addresses      []Address `json:"addresses" gorm:"serializer:json"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
