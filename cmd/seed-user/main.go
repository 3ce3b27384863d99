package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"masked-aadhaar.backend/internal/config"
	"masked-aadhaar.backend/internal/domain/entities"
	domainrepo "masked-aadhaar.backend/internal/domain/repositories"
	"masked-aadhaar.backend/internal/infrastructure/repositories"
	"masked-aadhaar.backend/pkg/crypto"
	"masked-aadhaar.backend/pkg/vid"
)

// seed-user inserts a confirmed user directly into the store, bypassing the
// OTP flow. Demo tooling for populating environments.

var openSeedDB = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.Driver == "postgres" {
		return gorm.Open(postgres.New(postgres.Config{DSN: cfg.URL(), PreferSimpleProtocol: true}), gormCfg)
	}
	return gorm.Open(sqlite.Open(cfg.Path), gormCfg)
}

var openSeedSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type seedRuntime interface {
	Migrate(ctx context.Context) error
	CreateUser(ctx context.Context, user *entities.User) error
}

type seedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (seedRuntime, io.Closer, error)
	now     func() time.Time
	out     io.Writer
}

type seedRuntimeImpl struct {
	schema   *repositories.SchemaManager
	userRepo domainrepo.UserRepository
}

func (r seedRuntimeImpl) Migrate(ctx context.Context) error {
	return r.schema.Migrate(ctx)
}

func (r seedRuntimeImpl) CreateUser(ctx context.Context, user *entities.User) error {
	return r.userRepo.Create(ctx, user)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultSeedDeps() seedDeps {
	return seedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (seedRuntime, io.Closer, error) {
			db, err := openSeedDB(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openSeedSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			return seedRuntimeImpl{
				schema:   repositories.NewSchemaManager(db),
				userRepo: repositories.NewUserRepository(db),
			}, sqlDB, nil
		},
		now: time.Now,
		out: os.Stdout,
	}
}

func buildUser(email, name, dob, gender, aadhaar, password string, now time.Time) (*entities.User, error) {
	if email == "" {
		return nil, fmt.Errorf("--email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("--name is required")
	}
	if _, err := time.Parse(entities.DOBLayout, dob); err != nil {
		return nil, fmt.Errorf("--dob must be in YYYY-MM-DD format")
	}
	if !entities.Gender(gender).Valid() {
		return nil, fmt.Errorf("--gender must be one of male, female or other")
	}
	if len(aadhaar) != 12 {
		return nil, fmt.Errorf("--aadhaar must be a 12-digit number")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("--password must be at least 8 characters")
	}

	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		Name:           name,
		DOB:            dob,
		Gender:         entities.Gender(gender),
		VID:            vid.Generate(aadhaar),
		HashedAadhaar:  crypto.SHA256Hex(aadhaar),
		LastFour:       aadhaar[len(aadhaar)-4:],
		Email:          email,
		HashedPassword: hashedPassword,
		RegisteredAt:   now.Unix(),
	}, nil
}

func runSeedUser(args []string, deps seedDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.prepare == nil {
		def := defaultSeedDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("seed-user", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "email (required)")
	nameFlag := fs.String("name", "", "full name (required)")
	dobFlag := fs.String("dob", "1990-01-01", "date of birth, YYYY-MM-DD")
	genderFlag := fs.String("gender", "other", "gender: male, female or other")
	aadhaarFlag := fs.String("aadhaar", "", "12-digit identity number (required)")
	passwordFlag := fs.String("password", "", "password, at least 8 characters (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := buildUser(*emailFlag, *nameFlag, *dobFlag, *genderFlag, *aadhaarFlag, *passwordFlag, deps.now())
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	if err := runtime.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := runtime.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed creating user: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Seeded confirmed user")
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", user.Email)
	_, _ = fmt.Fprintf(deps.out, "vid=%s\n", user.VID)
	_, _ = fmt.Fprintf(deps.out, "masked=XXXX XXXX %s\n", user.LastFour)
	return nil
}

func main() {
	if err := runSeedUser(os.Args[1:], defaultSeedDeps()); err != nil {
		log.Fatal(err)
	}
}
