package seed

import (
	"context"
	"fmt"
	"log"

	"cakeshop/internal/domain/model"
	"cakeshop/internal/repository"
	"cakeshop/internal/usecase"
	auth "cakeshop/internal/usecase/auth_usecase"

	"github.com/shopspring/decimal"
)

type userSeed struct {
	email    string
	password string
	name     string
	phone    string
	address  string
	role     model.Role
}

var users = []userSeed{
	{"demo@cakeshop.com", "password123", "Demo User", "+1234567890", "123 Main Street, City, State 12345", model.RoleUser},
	{"admin@cakeshop.com", "admin12345", "Admin", "", "", model.RoleAdmin},
}

// Seeder はデモ用のユーザーとカタログを入れる。何度流しても同じ状態になる。
type Seeder struct {
	users  repository.UserRepository
	cakes  repository.CakeRepository
	hasher auth.PasswordHasher
	idGen  usecase.IDGenerator
	clock  usecase.Clock
	logger *log.Logger
}

func NewSeeder(
	users repository.UserRepository,
	cakes repository.CakeRepository,
	hasher auth.PasswordHasher,
	idGen usecase.IDGenerator,
	clock usecase.Clock,
	logger *log.Logger,
) *Seeder {
	return &Seeder{users: users, cakes: cakes, hasher: hasher, idGen: idGen, clock: clock, logger: logger}
}

func (s *Seeder) Apply(ctx context.Context) error {
	for _, u := range users {
		if err := s.seedUser(ctx, u); err != nil {
			return err
		}
	}

	for _, c := range catalog {
		if err := s.seedCake(ctx, c); err != nil {
			return err
		}
	}
	s.logger.Printf("seeded %d cakes", len(catalog))
	return nil
}

// 既にいれば触らない（パスワードも変えない）
func (s *Seeder) seedUser(ctx context.Context, u userSeed) error {
	existing, err := s.users.FindByEmail(ctx, u.email)
	if err != nil {
		return fmt.Errorf("find user %s: %w", u.email, err)
	}
	if existing != nil {
		s.logger.Printf("user exists: %s", u.email)
		return nil
	}

	hashed, err := s.hasher.Hash(u.password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := s.clock.Now()
	user := &model.User{
		ID:           s.idGen.NewID(),
		Email:        u.email,
		PasswordHash: hashed,
		Name:         u.name,
		Phone:        optional(u.phone),
		Address:      optional(u.address),
		Role:         u.role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user %s: %w", u.email, err)
	}
	s.logger.Printf("created user: %s", u.email)
	return nil
}

func (s *Seeder) seedCake(ctx context.Context, c cakeSeed) error {
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		return fmt.Errorf("price of %s: %w", c.name, err)
	}

	now := s.clock.Now()
	cake := &model.Cake{
		ID:          s.idGen.NewID(),
		Name:        c.name,
		Description: c.description,
		Price:       price,
		Image:       c.image,
		Category:    c.category,
		Weight:      c.weight,
		Flavor:      c.flavor,
		InStock:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.cakes.UpsertByName(ctx, cake); err != nil {
		return fmt.Errorf("upsert cake %s: %w", c.name, err)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
