package commands

import (
	"context"
	"crypto/rand"
	"time"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/pkg/clock"
	"cast-dispatch/internal/pkg/errs"
	"cast-dispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 紛らわしい文字（0/O, 1/I）は除外した32文字
const linkCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const linkCodeLength = 6

type IssuedLinkCode struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LinkCodeCommands issues one-time codes binding an in-app account to a
// messaging identity. Issuing a new code voids any unused one.
type LinkCodeCommands interface {
	Issue(ctx context.Context, userID int64) (*IssuedLinkCode, error)
}

type linkCodeCommandsImpl struct {
	linkCodeRepo LinkCodeRepository
	pool         *pgxpool.Pool
	clock        clock.Clock
	ttl          time.Duration
}

func NewLinkCodeCommands(linkCodeRepo LinkCodeRepository, pool *pgxpool.Pool, clk clock.Clock, ttl time.Duration) LinkCodeCommands {
	return &linkCodeCommandsImpl{
		linkCodeRepo: linkCodeRepo,
		pool:         pool,
		clock:        clk,
		ttl:          ttl,
	}
}

func (c *linkCodeCommandsImpl) Issue(ctx context.Context, userID int64) (*IssuedLinkCode, error) {
	code, err := generateLinkCode()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate link code")
	}

	expiresAt := c.clock.Now().Add(c.ttl)

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.linkCodeRepo.Issue(ctx, tx, userID, code, expiresAt)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	return &IssuedLinkCode{Code: code, ExpiresAt: expiresAt}, nil
}

func generateLinkCode() (string, error) {
	buf := make([]byte, linkCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, linkCodeLength)
	for i, b := range buf {
		out[i] = linkCodeAlphabet[int(b)%len(linkCodeAlphabet)]
	}
	return string(out), nil
}
