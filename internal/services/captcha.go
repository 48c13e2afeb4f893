package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/pkg/logger"
)

const captchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// CaptchaService verifies reCAPTCHA tokens submitted with public forms.
// When no secret is configured, verification is skipped entirely.
type CaptchaService struct {
	cfg    *config.CaptchaConfig
	client *http.Client
}

func NewCaptchaService(cfg *config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type captchaVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a CAPTCHA token against the verification endpoint.
func (s *CaptchaService) Verify(token, remoteIP string) error {
	if !s.cfg.Enabled || s.cfg.Secret == "" {
		return nil
	}

	if token == "" {
		return errors.New("captcha token required")
	}

	form := url.Values{}
	form.Set("secret", s.cfg.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	resp, err := s.client.PostForm(captchaVerifyURL, form)
	if err != nil {
		logger.Warnf("[Captcha] verification request failed: %v", err)
		return errors.New("captcha verification unavailable")
	}
	defer resp.Body.Close()

	var result captchaVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.New("captcha verification unavailable")
	}

	if !result.Success {
		return errors.New("captcha verification failed")
	}

	return nil
}
