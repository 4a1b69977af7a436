package service

import (
	"context"
	"strings"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/metrics"

	"github.com/sirupsen/logrus"
)

// ActivationMessage is returned for every activation.
const ActivationMessage = "Aboneliğiniz aktif hale geldi"

// SubscriptionService exposes the plan catalog and the mock checkout.
type SubscriptionService interface {
	ListPlans() []domain.SubscriptionPlan
	// Activate never fails: there is no payment gateway behind it and the
	// account is not updated.
	Activate(ctx context.Context, req domain.PaymentRequest) domain.ActivationResult
}

type subscriptionService struct {
	log logrus.FieldLogger
}

func NewSubscriptionService(log logrus.FieldLogger) SubscriptionService {
	return &subscriptionService{log: log}
}

// ListPlans builds the plans on every call so callers own the result.
func (s *subscriptionService) ListPlans() []domain.SubscriptionPlan {
	return []domain.SubscriptionPlan{
		{
			ID:       domain.PlanFree,
			Name:     "Ücretsiz",
			Price:    0,
			Features: []string{"Blog erişimi", "Hakkımızda erişimi"},
		},
		{
			ID:         domain.PlanBasic,
			Name:       "Temel",
			Price:      100,
			Features:   []string{"Egzersiz modülü", "Kas seçim sistemi", "Temel analizler"},
			HasAnatomy: true,
		},
		{
			ID:            domain.PlanAdvanced,
			Name:          "Gelişmiş",
			Price:         300,
			Features:      []string{"Video swipe modülü", "Detaylı analizler", "Dashboard erişimi", "Diyet planları"},
			HasAnatomy:    true,
			HasVideoSwipe: true,
		},
		{
			ID:            domain.PlanComprehensive,
			Name:          "Kapsamlı",
			Price:         500,
			Features:      []string{"Tüm özellikler", "Kişisel antrenör desteği", "AI öneriler", "Öncelikli destek", "3D kas animasyonları"},
			HasAnatomy:    true,
			HasVideoSwipe: true,
		},
	}
}

func (s *subscriptionService) Activate(ctx context.Context, req domain.PaymentRequest) domain.ActivationResult {
	s.log.WithFields(logrus.Fields{
		"plan": req.PlanName,
		"card": MaskCardNumber(req.CardNumber),
	}).Info("subscription activated")
	metrics.RecordActivation(req.PlanName)

	return domain.ActivationResult{
		Success: true,
		Message: ActivationMessage,
		Plan:    req.PlanName,
	}
}

// MaskCardNumber masks a card number, showing only last 4 characters.
// Input is unvalidated, so it is cut on runes to keep the log valid UTF-8.
func MaskCardNumber(cardNumber string) string {
	digits := []rune(strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", ""))
	if len(digits) < 4 {
		return "****"
	}
	return "****" + string(digits[len(digits)-4:])
}
