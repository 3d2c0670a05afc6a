package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/pkg/apperrors"
)

func seedPromotion(repo *fakePromotionRepo, code string, mutate func(*models.Promotion)) *models.Promotion {
	p := &models.Promotion{
		ID:       uuid.New(),
		Code:     code,
		Kind:     models.PromotionKindFixed,
		Value:    500,
		IsActive: true,
	}
	if mutate != nil {
		mutate(p)
	}
	return repo.add(p)
}

func TestPromotionCreateUppercasesCode(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)

	created, err := svc.Create(context.Background(), &dto.CreatePromotionRequest{
		Code:  "  spring10 ",
		Kind:  string(models.PromotionKindPercent),
		Value: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "SPRING10", created.Code)
	assert.True(t, created.IsActive)
}

func TestPromotionCreateDuplicateCode(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)
	seedPromotion(repo, "SPRING10", nil)

	_, err := svc.Create(context.Background(), &dto.CreatePromotionRequest{
		Code:  "spring10",
		Kind:  string(models.PromotionKindFixed),
		Value: 500,
	})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestPromotionCreateRejectsPercentOver100(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)

	_, err := svc.Create(context.Background(), &dto.CreatePromotionRequest{
		Code:  "BIG",
		Kind:  string(models.PromotionKindPercent),
		Value: 150,
	})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestPromotionUpdateRejectsPercentOver100(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)
	p := seedPromotion(repo, "TEN", func(p *models.Promotion) {
		p.Kind = models.PromotionKindPercent
		p.Value = 10
	})

	value := int64(120)
	_, err := svc.Update(context.Background(), p.ID, &dto.UpdatePromotionRequest{Value: &value})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)

	stored, _ := repo.GetByID(context.Background(), p.ID)
	assert.Equal(t, int64(10), stored.Value, "rejected update must not persist")
}

func TestPromotionValidate(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		mutate  func(*models.Promotion)
		wantErr bool
	}{
		{"valid open code", nil, false},
		{"inactive", func(p *models.Promotion) { p.IsActive = false }, true},
		{"not started", func(p *models.Promotion) { p.StartsAt = &future }, true},
		{"expired", func(p *models.Promotion) { p.EndsAt = &past }, true},
		{"usage exhausted", func(p *models.Promotion) { p.UsageLimit = 3; p.UsedCount = 3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePromotionRepo()
			svc := NewPromotionService(repo)
			seedPromotion(repo, "CODE", tt.mutate)

			_, err := svc.Validate(context.Background(), "code")
			if tt.wantErr {
				var conflict *apperrors.ConflictError
				require.ErrorAs(t, err, &conflict)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPromotionValidateUnknownCode(t *testing.T) {
	svc := NewPromotionService(newFakePromotionRepo())

	_, err := svc.Validate(context.Background(), "NOPE")

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPromotionRedeemIncrementsUsage(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)
	p := seedPromotion(repo, "LAST", func(p *models.Promotion) {
		p.UsageLimit = 2
		p.UsedCount = 1
	})

	redeemed, err := svc.Redeem(context.Background(), "last")
	require.NoError(t, err)
	assert.Equal(t, 2, redeemed.UsedCount)

	stored, _ := repo.GetByID(context.Background(), p.ID)
	assert.Equal(t, 2, stored.UsedCount)

	// the limit is now reached; the next attempt fails at validation
	_, err = svc.Redeem(context.Background(), "last")
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestPromotionRedeemLosesRace(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)
	seedPromotion(repo, "RACE", func(p *models.Promotion) { p.UsageLimit = 10 })

	// validation passes but a concurrent redeem takes the last slot before the
	// increment lands
	repo.incrementDenied = true
	_, err := svc.Redeem(context.Background(), "race")

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestPromotionDeactivateExpired(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)

	past := time.Now().Add(-time.Hour)
	expired := seedPromotion(repo, "OLD", func(p *models.Promotion) { p.EndsAt = &past })
	open := seedPromotion(repo, "OPEN", nil)

	count, err := svc.DeactivateExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, _ := repo.GetByID(context.Background(), expired.ID)
	assert.False(t, stored.IsActive)
	stillOpen, _ := repo.GetByID(context.Background(), open.ID)
	assert.True(t, stillOpen.IsActive)
}
