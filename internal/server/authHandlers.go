package server

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"time"

	"freshcart/internal/client"
	"freshcart/internal/model"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var phoneRegexp = regexp.MustCompile(`^\+[0-9]{9,15}$`)

func (s Server) authRequestCode() http.HandlerFunc {
	type request struct {
		Phone string `json:"phone"`
	}
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("authRequestCode: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if !phoneRegexp.MatchString(req.Phone) {
			s.Logger.Debugf("authRequestCode: Invalid phone: %s", req.Phone)
			http.Error(w, "Invalid phone number", http.StatusBadRequest)
			return
		}

		code, err := generateVerificationCode()
		if err != nil {
			s.Logger.Errorf("authRequestCode: Error generating code, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost-3)
		if err != nil {
			s.Logger.Errorf("authRequestCode: Error generating bcrypt from code, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		s.Store.CreateVerificationCode(req.Phone, codeHash, s.CodeTTL)
		go s.deliverCode(req.Phone, code)

		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) authVerifyCode() http.HandlerFunc {
	type request struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	type response struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("authVerifyCode: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		if _, ok := s.Store.ConsumeVerificationCode(req.Phone, req.Code); !ok {
			s.Logger.Debugf("authVerifyCode: No valid code for phone: %s", req.Phone)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		u, ok := s.Store.GetUserByPhone(req.Phone)
		if !ok {
			created, inserted := s.Store.CreateUser(model.User{Phone: req.Phone})
			if inserted {
				u = created
			} else {
				// Lost a signup race for the same phone; the winner's row is ours.
				u, _ = s.Store.GetUserByPhone(req.Phone)
			}
		}

		token, digest, exp, err := s.createSessionToken(u.ID)
		if err != nil {
			s.Logger.Errorf("authVerifyCode: Error creating session token for UserID: %s, err: %v", u.ID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.Store.CreateSession(u.ID, digest, exp)

		s.writeJsonResponse(w, response{Token: token, User: u}, http.StatusOK)
	}
}

func (s Server) authLogout() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("authLogout: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		s.Store.InvalidateSession(uc.tokenDigest)
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) deliverCode(phone string, code string) {
	if err := s.Client.SendVerificationCode(phone, code); err != nil {
		if errors.Is(err, client.ErrNotConfigured) {
			// Development fallback: surface the code in the log.
			s.Logger.Infof("deliverCode: Telegram not configured, code for %s: %s", phone, code)
			return
		}
		s.Logger.Errorf("deliverCode: Error sending code for %s, err: %v", phone, err)
	}
}

func (s Server) createSessionToken(userID string) (token string, digest string, exp time.Time, err error) {
	exp = time.Now().Add(s.SessionTTL)
	salt := make([]byte, 32)
	if _, err = rand.Read(salt); err != nil {
		return "", "", exp, errors.Wrapf(err, "error generating salt for session token for UserID: %s", userID)
	}
	t, err := jwt.NewBuilder().
		Subject(userID).
		Issuer("freshcart-api").
		Expiration(exp).
		Claim("s", base64.StdEncoding.EncodeToString(salt)).
		Build()
	if err != nil {
		return "", "", exp, errors.Wrapf(err, "error building session token for UserID: %s", userID)
	}
	signed, err := jwt.Sign(t, jwt.WithKey(jwa.HS256, s.AuthSecretKey))
	if err != nil {
		return "", "", exp, errors.Wrapf(err, "error signing session token for UserID: %s", userID)
	}
	return string(signed), tokenDigest(string(signed)), exp, nil
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}
