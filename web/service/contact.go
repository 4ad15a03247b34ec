package service

import (
	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/database/model"
)

// ContactService manages the singleton contact-info document.
type ContactService struct{}

// defaultContact seeds the document on first read so the public contact
// page always has something to render.
func defaultContact() *model.Contact {
	return &model.Contact{
		MobilePhone:    "+63925 551 0987",
		LandlineNumber: "+628 788 1613",
		Emails: []string{
			"info.jsprimeconstruction@gmail.com",
			"info.jsconstructionandtrading@gmail.com",
		},
		FacebookLink: "https://www.facebook.com/js.primeconstruction",
		Addresses: []model.Address{
			{
				OfficeType:    "Head Office",
				Building:      "Civic Prime Building",
				StreetAddress: "2301 Civic Drive",
				Subdivision:   "Filinvest Corporate City",
				Barangay:      "Alabang",
				City:          "Muntinlupa City",
				Country:       "Philippines",
				PostalCode:    "1781",
			},
			{
				OfficeType:    "Satellite Office",
				StreetAddress: "Daang Hari Molino IV",
				City:          "Bacoor City",
				Province:      "Cavite",
				Country:       "Philippines",
			},
		},
	}
}

// Get returns the contact document, creating the default when absent.
func (s *ContactService) Get() (*model.Contact, error) {
	db := database.GetDB()

	contact := &model.Contact{}
	err := db.First(contact).Error
	if database.IsNotFound(err) {
		contact = defaultContact()
		if err := db.Create(contact).Error; err != nil {
			return nil, err
		}
		return contact, nil
	} else if err != nil {
		return nil, err
	}
	return contact, nil
}

// Upsert overwrites the document, creating it when absent.
func (s *ContactService) Upsert(update *model.Contact) (*model.Contact, error) {
	db := database.GetDB()

	contact := &model.Contact{}
	err := db.First(contact).Error
	if err != nil && !database.IsNotFound(err) {
		return nil, err
	}

	contact.MobilePhone = update.MobilePhone
	contact.LandlineNumber = update.LandlineNumber
	contact.Emails = update.Emails
	contact.FacebookLink = update.FacebookLink
	contact.GoogleMapsSrc = update.GoogleMapsSrc
	contact.Addresses = update.Addresses

	if err := db.Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}
