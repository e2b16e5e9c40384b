package database

import (
	"context"
	"time"

	"github.com/thereayou/contacts-api/internal/models"
)

func (d *Database) ListContacts(ctx context.Context, userID uint, skip, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (d *Database) GetContactByID(ctx context.Context, userID, contactID uint) (*models.Contact, error) {
	contact := models.Contact{}
	err := d.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID, userID).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// SearchContacts ищет по точному совпадению firstname, lastname или email
func (d *Database) SearchContacts(ctx context.Context, userID uint, information string) ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("firstname = ? OR lastname = ? OR email = ?", information, information, information).
		Order("id").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// UpcomingBirthdays возвращает контакты с днём рождения в ближайшие 7 дней
func (d *Database) UpcomingBirthdays(ctx context.Context, userID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	end := now.AddDate(0, 0, 7)

	upcoming := []models.Contact{}
	for _, contact := range contacts {
		if contact.Birthday == nil {
			continue
		}
		birthday := anchorToYear(*contact.Birthday, now.Year())
		if birthday.After(now) && !birthday.After(end) {
			upcoming = append(upcoming, contact)
		}
	}
	return upcoming, nil
}

func (d *Database) HasContacts(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *Database) CreateContact(ctx context.Context, contact *models.Contact) error {
	return d.db.WithContext(ctx).Create(contact).Error
}

// UpdateContact перезаписывает все изменяемые поля контакта
func (d *Database) UpdateContact(ctx context.Context, userID, contactID uint, fields *models.Contact) (*models.Contact, error) {
	contact, err := d.GetContactByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	contact.Firstname = fields.Firstname
	contact.Lastname = fields.Lastname
	contact.Email = fields.Email
	contact.Phone = fields.Phone
	contact.Birthday = fields.Birthday

	if err := d.db.WithContext(ctx).Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (d *Database) DeleteContact(ctx context.Context, userID, contactID uint) (*models.Contact, error) {
	contact, err := d.GetContactByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Delete(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// anchorToYear переносит месяц и день на указанный год.
// 29 февраля в невисокосном году считается 28 февраля.
func anchorToYear(t time.Time, year int) time.Time {
	month, day := t.Month(), t.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
