package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maatiworld/maati-world-backend/config"
	"github.com/maatiworld/maati-world-backend/models"
)

type Database struct {
	blogRepo     *BlogRepo
	likeRepo     *LikeRepo
	commentRepo  *CommentRepo
	feedbackRepo *FeedbackRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogRepo:     NewBlogRepo(db),
		likeRepo:     NewLikeRepo(db),
		commentRepo:  NewCommentRepo(db),
		feedbackRepo: NewFeedbackRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) LikeRepo() *LikeRepo {
	return d.likeRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) FeedbackRepo() *FeedbackRepo {
	return d.feedbackRepo
}

// Open connects to the hosted Postgres store described by cfg and verifies
// the connection with a probe query.
func Open(cfg map[string]string) (*gorm.DB, error) {
	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(cfg, "DATABASE_HOST", "localhost"),
		config.GetString(cfg, "DATABASE_USER", "postgres"),
		config.GetString(cfg, "DATABASE_PASSWORD", ""),
		config.GetString(cfg, "DATABASE_NAME", "maati_world"),
		config.GetString(cfg, "DATABASE_PORT", "5432"),
		config.GetString(cfg, "DATABASE_SSLMODE", "require"),
	)

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("testing database connection: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the four tables this service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Blog{},
		&models.Like{},
		&models.Comment{},
		&models.Feedback{},
	)
}
