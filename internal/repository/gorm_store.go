package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"family_tasks/internal/domain"

	"gorm.io/gorm"
)

type userModel struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
}

func (userModel) TableName() string { return "users" }

type listModel struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description *string
	UserID      *int64
	CreatedAt   time.Time
}

func (listModel) TableName() string { return "lists" }

type taskModel struct {
	ID          int64  `gorm:"primaryKey"`
	ListID      int64  `gorm:"index;not null"`
	Description string `gorm:"not null"`
	Notes       *string
	Completed   bool `gorm:"not null;default:false"`
	AssignedTo  *string
	Urgency     string `gorm:"not null;default:medium"`
	Importance  string `gorm:"not null;default:medium"`
	CreatedAt   time.Time
}

func (taskModel) TableName() string { return "tasks" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{ID: m.ID, Username: m.Username, PasswordHash: m.Password, CreatedAt: m.CreatedAt}
}

func (m *listModel) toDomain() *domain.List {
	return &domain.List{ID: m.ID, Name: m.Name, Description: m.Description, UserID: m.UserID, CreatedAt: m.CreatedAt}
}

func (m *taskModel) toDomain() *domain.Task {
	return &domain.Task{
		ID:          m.ID,
		ListID:      m.ListID,
		Description: m.Description,
		Notes:       m.Notes,
		Completed:   m.Completed,
		AssignedTo:  m.AssignedTo,
		Urgency:     domain.Level(m.Urgency),
		Importance:  domain.Level(m.Importance),
		CreatedAt:   m.CreatedAt,
	}
}

// GormStore is the SQLite-backed store used for single-machine installs.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the schema and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&userModel{}, &listModel{}, &taskModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func gormNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (s *GormStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, gormNotFound(err)
	}
	return m.toDomain(), nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, gormNotFound(err)
	}
	return m.toDomain(), nil
}

func (s *GormStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	m := userModel{Username: in.Username, Password: in.PasswordHash}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&userModel{}).Where("username = ?", in.Username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrUsernameTaken
		}
		return tx.Create(&m).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var models []userModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]*domain.User, 0, len(models))
	for i := range models {
		res = append(res, models[i].toDomain())
	}
	return res, nil
}

func (s *GormStore) ListLists(ctx context.Context) ([]*domain.List, error) {
	var models []listModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]*domain.List, 0, len(models))
	for i := range models {
		res = append(res, models[i].toDomain())
	}
	return res, nil
}

func (s *GormStore) GetList(ctx context.Context, id int64) (*domain.List, error) {
	var m listModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, gormNotFound(err)
	}
	return m.toDomain(), nil
}

func (s *GormStore) CreateList(ctx context.Context, in domain.NewList) (*domain.List, error) {
	m := listModel{Name: in.Name, Description: in.Description.Ptr(), UserID: in.UserID}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (s *GormStore) UpdateList(ctx context.Context, id int64, patch domain.ListPatch) (*domain.List, error) {
	var out *domain.List
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m listModel
		if err := tx.First(&m, id).Error; err != nil {
			return gormNotFound(err)
		}
		l := m.toDomain()
		if patch.Empty() {
			out = l
			return nil
		}
		patch.Apply(l)
		m.Name, m.Description = l.Name, l.Description
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) DeleteList(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&taskModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&listModel{}, id).Error
	})
}

func (s *GormStore) ListTasks(ctx context.Context, listID int64) ([]*domain.Task, error) {
	var models []taskModel
	if err := s.db.WithContext(ctx).Where("list_id = ?", listID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]*domain.Task, 0, len(models))
	for i := range models {
		res = append(res, models[i].toDomain())
	}
	return res, nil
}

func (s *GormStore) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var m taskModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, gormNotFound(err)
	}
	return m.toDomain(), nil
}

func (s *GormStore) CreateTask(ctx context.Context, in domain.NewTask) (*domain.Task, error) {
	t := in.Build()
	m := taskModel{
		ListID:      t.ListID,
		Description: t.Description,
		Notes:       t.Notes,
		AssignedTo:  t.AssignedTo,
		Urgency:     string(t.Urgency),
		Importance:  string(t.Importance),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&listModel{}).Where("id = ?", in.ListID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (s *GormStore) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	var out *domain.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m taskModel
		if err := tx.First(&m, id).Error; err != nil {
			return gormNotFound(err)
		}
		t := m.toDomain()
		if patch.Empty() {
			out = t
			return nil
		}
		patch.Apply(t)
		m.Description, m.Notes, m.AssignedTo, m.Completed = t.Description, t.Notes, t.AssignedTo, t.Completed
		m.Urgency, m.Importance = string(t.Urgency), string(t.Importance)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) DeleteTask(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&taskModel{}, id).Error
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
