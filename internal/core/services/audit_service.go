package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/securevault/security-service/internal/core/domain"
)

// staleAfter is how long a credential may go without rotation before the
// audit flags it.
const staleAfter = 90 * 24 * time.Hour

// maxStaleTitlesShown caps how many stale entry titles get listed in the
// recommendation text.
const maxStaleTitlesShown = 3

// AuditService builds vault hygiene reports from entry metadata. It is
// stateless: every report is derived from the request alone.
type AuditService struct {
	now func() time.Time
}

func NewAuditService() *AuditService {
	return &AuditService{now: time.Now}
}

// GenerateReport analyzes entry age and diversity and produces recommendations.
// Entries with unparsable timestamps are ignored rather than failing the report.
func (s *AuditService) GenerateReport(ctx context.Context, userID string, entries []domain.AuditEntry) domain.AuditReport {
	now := s.now()

	var recommendations []string
	riskFactors := 0

	// Stale credentials: each entry is judged by its OWN last_updated timestamp.
	var staleTitles []string
	for _, entry := range entries {
		updated, err := time.Parse(time.RFC3339, entry.LastUpdated)
		if err != nil {
			continue
		}
		if entry.Type == domain.EntryTypeCredential && now.Sub(updated) > staleAfter {
			staleTitles = append(staleTitles, entry.Title)
			riskFactors++
		}
	}

	if len(staleTitles) > 0 {
		shown := staleTitles
		if len(shown) > maxStaleTitlesShown {
			shown = shown[:maxStaleTitlesShown]
		}
		recommendations = append(recommendations,
			fmt.Sprintf("🔄 Update these credentials — not changed in 90+ days: %s", strings.Join(shown, ", ")))
	}

	if len(entries) == 0 {
		recommendations = append(recommendations,
			"📝 Your vault is empty. Start adding your credentials to keep them secure.")
	}

	if len(entries) > 0 && !hasEntryOfType(entries, domain.EntryTypeNote) {
		recommendations = append(recommendations,
			"📋 Consider adding secure notes for recovery codes and other sensitive info.")
	}

	recommendations = append(recommendations,
		"🔑 Use unique passwords for every account — never reuse credentials.",
		"🛡️ Enable two-factor authentication on all critical accounts.",
		"🔍 Run breach checks on your stored passwords regularly.",
	)

	return domain.AuditReport{
		ReportID:        uuid.New().String(),
		UserID:          userID,
		GeneratedAt:     now,
		TotalEntries:    len(entries),
		Recommendations: recommendations,
		RiskScore:       scoreRisk(riskFactors),
	}
}

func hasEntryOfType(entries []domain.AuditEntry, entryType string) bool {
	for _, e := range entries {
		if e.Type == entryType {
			return true
		}
	}
	return false
}

func scoreRisk(riskFactors int) string {
	switch {
	case riskFactors == 0:
		return domain.RiskLow
	case riskFactors <= 2:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}
