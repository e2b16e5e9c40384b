package database

import (
	"context"

	"github.com/thereayou/contacts-api/internal/models"
)

func (d *Database) SaveUser(ctx context.Context, user *models.User) error {
	return d.db.WithContext(ctx).Create(user).Error
}

func (d *Database) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user := models.User{}
	if err := d.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRefreshToken сохраняет refresh-токен пользователя (пустая строка очищает его)
func (d *Database) UpdateRefreshToken(ctx context.Context, userID uint, token string) error {
	return d.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("refresh_token", token).Error
}

// ConfirmEmail помечает e-mail подтверждённым
func (d *Database) ConfirmEmail(ctx context.Context, email string) error {
	user, err := d.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return d.db.WithContext(ctx).
		Model(user).
		Update("confirmed", true).Error
}

// UpdateAvatar обновляет URL аватара и возвращает пользователя
func (d *Database) UpdateAvatar(ctx context.Context, email, url string) (*models.User, error) {
	user, err := d.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Model(user).Update("avatar", url).Error; err != nil {
		return nil, err
	}
	return user, nil
}
