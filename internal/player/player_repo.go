package player

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository defines all database operations for player records.
type PlayerRepository interface {
	FindByID(id string) (*Player, error)
	// FindByIDs batch-resolves player ids. Missing ids are silently omitted
	// and result order is not significant.
	FindByIDs(ids []string) ([]Player, error)
	FindByEmail(email string) (*Player, error)
	FindAll() ([]Player, error)
	Save(p *Player) error
	SaveAll(players []*Player) error
	DeleteByIDAndUserID(id, userID string) error
	// Transact runs fn against a repository bound to a single serializable
	// transaction, so a read-modify-write over several players commits as
	// one unit.
	Transact(fn func(repo PlayerRepository) error) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) FindByID(id string) (*Player, error) {
	var p Player
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) FindByIDs(ids []string) ([]Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var players []Player
	if err := r.db.Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) FindByEmail(email string) (*Player, error) {
	var p Player
	if err := r.db.First(&p, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) FindAll() ([]Player, error) {
	var players []Player
	if err := r.db.Order("name asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Save(p *Player) error {
	return r.db.Save(p).Error
}

func (r *playerRepository) SaveAll(players []*Player) error {
	for _, p := range players {
		if err := r.db.Save(p).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *playerRepository) DeleteByIDAndUserID(id, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&Player{}).Error
}

func (r *playerRepository) Transact(fn func(repo PlayerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&playerRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}
