package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultTTL            = 24 * 14 * time.Hour
	sessionKeyPrefix      = "fitcoach-session||"
	userSessionsKeyPrefix = "fitcoach-sessions||"
	tokensSetKey          = "fitcoach-sessions"
	tokenLength           = 35
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("invalid session value")
)

type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

// Service keeps login sessions in redis. A session key holds "<userId>|<unix created at>"
// and expires by itself after the ttl; the token sets are cleaned by ScanAndClean.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	nowFunc        func() time.Time
}

func NewService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		nowFunc:        time.Now,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func userSessionsKey(userID string) string {
	return userSessionsKeyPrefix + userID
}

func sessionValue(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s|%d", userID, createdAt.Unix())
}

func parseSessionValue(val string) (string, time.Time, error) {
	userID, createdAtStr, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return "", time.Time{}, ErrInvalidSession
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", ErrInvalidSession, err)
	}
	return userID, time.Unix(createdAtUnix, 0).UTC(), nil
}

func (s *Service) Login(ctx context.Context, userID string, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.login")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID))

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	if err := s.redisClient.Set(ctx, sessionKey(token), sessionValue(userID, createdAt), s.ttl).Err(); err != nil {
		return "", err
	}

	if err := s.redisClient.SAdd(ctx, userSessionsKey(userID), token).Err(); err != nil {
		return "", err
	}

	// add token to list of all sessions, used by the cleaner
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *Service) Session(ctx context.Context, token string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.session")
	defer func() {
		if errors.Is(err, ErrSessionNotFound) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if token == "" {
		return nil, ErrSessionNotFound
	}

	val, err := s.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	userID, createdAt, err := parseSessionValue(val)
	if err != nil {
		return nil, err
	}

	if s.nowFunc().Sub(createdAt) > s.ttl {
		return nil, ErrSessionNotFound
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}, nil
}

// Logout removes the session. Returns false if there was no such session.
func (s *Service) Logout(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	val, err := s.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	userID, _, err := parseSessionValue(val)
	if err != nil {
		return false, err
	}

	if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		return false, err
	}
	if err := s.redisClient.SRem(ctx, userSessionsKey(userID), token).Err(); err != nil {
		return false, err
	}
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return true, nil
}

// LogoutAll drops every session of the user, returns the number of dropped sessions.
func (s *Service) LogoutAll(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logoutAll")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID))

	tokens, err := s.redisClient.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return 0, err
	}

	for _, token := range tokens {
		if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			return 0, err
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			return 0, err
		}
	}

	if err := s.redisClient.Del(ctx, userSessionsKey(userID)).Err(); err != nil {
		return 0, err
	}

	return len(tokens), nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old or gone
func (s *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := s.nowFunc()
	cleaned := 0
	for _, token := range sessionTokens {
		val, err := s.redisClient.Get(ctx, sessionKey(token)).Result()
		if errors.Is(err, redis.Nil) {
			// key expired on its own, only the set membership is left
			if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
				log.Errorf("=> auth service, clean expired token: %s", err)
				continue
			}
			cleaned++
			continue
		}
		if err != nil {
			log.Errorf("=> auth service, scan and clean get token: %s", err)
			continue
		}

		userID, createdAt, err := parseSessionValue(val)
		if err != nil {
			log.Errorf("=> auth service, scan and clean parse token: %s", err)
			continue
		}

		if now.Sub(createdAt) <= s.ttl {
			continue
		}

		if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			log.Errorf("=> auth service, clean token: %s", err)
			continue
		}
		if err := s.redisClient.SRem(ctx, userSessionsKey(userID), token).Err(); err != nil {
			log.Errorf("=> auth service, clean user token: %s", err)
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token: %s", err)
			continue
		}
		cleaned++
	}

	log.Debugf("=> auth service, scan and clean done, %d sessions cleaned", cleaned)
}

// RunCleaner calls ScanAndClean every interval until the context is done.
func (s *Service) RunCleaner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debugln("auth service, session cleaner stopped")
			return
		case <-ticker.C:
			s.ScanAndClean(ctx)
		}
	}
}
