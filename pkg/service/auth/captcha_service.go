package auth

import "github.com/mojocn/base64Captcha"

// CaptchaService issues and checks image captchas for registration.
type CaptchaService interface {
	Generate() (id, b64Image string, err error)
	Verify(id, answer string) bool
}

type captchaService struct {
	captcha *base64Captcha.Captcha
}

// NewCaptchaService builds a digit captcha backed by the in-memory store.
func NewCaptchaService() CaptchaService {
	driver := base64Captcha.NewDriverDigit(80, 240, 5, 0.7, 80)
	return &captchaService{
		captcha: base64Captcha.NewCaptcha(driver, base64Captcha.DefaultMemStore),
	}
}

func (s *captchaService) Generate() (string, string, error) {
	id, b64, _, err := s.captcha.Generate()
	return id, b64, err
}

func (s *captchaService) Verify(id, answer string) bool {
	if id == "" || answer == "" {
		return false
	}
	return s.captcha.Verify(id, answer, true)
}
