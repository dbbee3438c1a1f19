package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	sessionRepo "bookie/database/repository/session"
	userRepo "bookie/database/repository/user"
	"bookie/models"
	"bookie/utils"
)

// DefaultAuthService implements AuthService over the sessions collection,
// with an optional Redis read-through cache in front of the token lookup.
// A nil or unreachable cache degrades to plain database lookups.
type DefaultAuthService struct {
	Sessions sessionRepo.SessionRepository
	Users    userRepo.UserRepository
	Cache    *redis.Client
}

// Authenticate resolves a bearer token to its owning user.
func (s *DefaultAuthService) Authenticate(token string) (*models.User, error) {
	if token == "" {
		return nil, utils.NewAuthError(utils.MsgInvalidAuthMethod, "")
	}

	if user := s.cachedUser(token); user != nil {
		return user, nil
	}

	user, err := s.Sessions.GetUserByToken(token)
	if err != nil {
		switch {
		case errors.Is(err, sessionRepo.ErrSessionNotFound):
			return nil, utils.NewAuthError(utils.MsgNotAuthenticated, "")
		case errors.Is(err, sessionRepo.ErrUserNotFound):
			return nil, utils.NewAuthError(utils.MsgUserNotFound, "")
		default:
			return nil, utils.NewInternalError(map[string]interface{}{"error": err.Error()})
		}
	}

	s.cacheUser(token, user)
	return user, nil
}

// Login verifies credentials and returns a fresh 16-byte hex session token.
func (s *DefaultAuthService) Login(username, password string) (string, error) {
	echo := map[string]interface{}{"login": map[string]interface{}{"username": username}}

	user, err := s.Users.GetByEmail(username)
	if err != nil {
		return "", utils.NewInternalError(echo)
	}
	if user == nil {
		return "", utils.NewNotFoundError(utils.MsgUserNotFound, echo)
	}

	digest := utils.GetHash(password, user.Salt)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.Password)) != 1 {
		return "", utils.NewAuthError(utils.MsgNotAuthenticated, username)
	}

	token, err := utils.GetToken()
	if err != nil {
		return "", utils.NewInternalError(echo)
	}

	// Upserting by username invalidates any prior session; drop its cache
	// entry too so the old token stops authenticating immediately.
	s.evictSessionCache(username)

	session := models.Session{Username: username, Token: token}
	utils.GetLogger().Info("Logging in user", zap.String("username", username))
	if err := s.Sessions.Upsert(&session); err != nil {
		return "", utils.NewInternalError(echo)
	}
	return token, nil
}

// Logout deletes the user's session(s).
func (s *DefaultAuthService) Logout(user *models.User) error {
	s.evictSessionCache(user.Email)

	utils.GetLogger().Info("Logging out user", zap.String("username", user.Email))
	if err := s.Sessions.DeleteByUsername(user.Email); err != nil {
		return utils.NewInternalError(map[string]interface{}{
			"login": map[string]interface{}{"username": user.Email},
		})
	}
	return nil
}

func (s *DefaultAuthService) cachedUser(token string) *models.User {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(context.Background(), utils.AuthCachePrefix+token).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Auth cache lookup failed, falling back to DB", zap.Error(err))
		}
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil
	}
	return &user
}

func (s *DefaultAuthService) cacheUser(token string, user *models.User) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := s.Cache.Set(context.Background(), utils.AuthCachePrefix+token, data, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache auth token", zap.Error(err))
	}
}

// evictSessionCache removes the cached entry for the user's current token,
// if any.
func (s *DefaultAuthService) evictSessionCache(username string) {
	if s.Cache == nil {
		return
	}
	session, err := s.Sessions.GetByUsername(username)
	if err != nil || session == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), utils.AuthCachePrefix+session.Token).Err(); err != nil {
		utils.GetLogger().Warn("Failed to evict auth cache entry", zap.Error(err))
	}
}
