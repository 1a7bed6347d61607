// Package localstore is the guest-session persistence layer: a small
// key-value store over an embedded sqlite file, holding JSON-serialized
// collections plus the identity markers. It is the fallback store whenever
// the remote API is unreachable.
package localstore

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// Keys used by the core. Values are JSON except email/token which are plain.
const (
	KeyCart              = "cart"
	KeyWishlist          = "wishlist"
	KeyEmail             = "email"
	KeyToken             = "token"
	KeyOrderStatusSignal = "order_status_signal"
)

// Entry is one persisted key-value pair.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

type Store struct {
	db   *gorm.DB
	path string
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the backing file path (watched for change signals).
func (s *Store) Path() string {
	return s.path
}

// Get returns the raw value for key. A missing key reads as ("", false).
func (s *Store) Get(key string) (string, bool) {
	var e Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		return "", false
	}
	return e.Value, true
}

// Put writes key=value, replacing any previous value.
func (s *Store) Put(key, value string) error {
	e := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}

// LoadCart reads the guest cart. Missing or malformed JSON reads as an
// empty cart, never an error.
func (s *Store) LoadCart() []models.CartItem {
	raw, ok := s.Get(KeyCart)
	if !ok {
		return []models.CartItem{}
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("⚠️ Malformed cart entry in local store, treating as empty: %v", err)
		return []models.CartItem{}
	}
	return items
}

func (s *Store) SaveCart(items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Put(KeyCart, string(data))
}

// LoadWishlist reads the guest wishlist with the same tolerance as LoadCart.
func (s *Store) LoadWishlist() []models.WishlistItem {
	raw, ok := s.Get(KeyWishlist)
	if !ok {
		return []models.WishlistItem{}
	}
	var items []models.WishlistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("⚠️ Malformed wishlist entry in local store, treating as empty: %v", err)
		return []models.WishlistItem{}
	}
	return items
}

func (s *Store) SaveWishlist(items []models.WishlistItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Put(KeyWishlist, string(data))
}

// SetIdentity stores the email and token markers.
func (s *Store) SetIdentity(id models.Identity) error {
	if err := s.Put(KeyEmail, id.Email); err != nil {
		return err
	}
	return s.Put(KeyToken, id.Token)
}

// ClearIdentity removes both identity markers.
func (s *Store) ClearIdentity() error {
	if err := s.Delete(KeyEmail); err != nil {
		return err
	}
	return s.Delete(KeyToken)
}
