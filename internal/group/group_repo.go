package group

import (
	"errors"

	"gorm.io/gorm"
)

var ErrGroupNotFound = errors.New("group not found")

// GroupRepository defines all database operations for group records.
type GroupRepository interface {
	FindAll() ([]Group, error)
	FindByID(id string) (*Group, error)
	Save(g *Group) error
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) FindAll() ([]Group, error) {
	var groups []Group
	if err := r.db.Order("name asc").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) FindByID(id string) (*Group, error) {
	var g Group
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) Save(g *Group) error {
	return r.db.Save(g).Error
}
