package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/dto"
	"github.com/GlebRadaev/brewpoints/internal/handlers/httperr"
	"github.com/GlebRadaev/brewpoints/pkg/utils"
	"github.com/GlebRadaev/brewpoints/pkg/validate"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	maxIdempotencyKeyLen = 128
)

type ProfileService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Profile, error)
	SetRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
}

type LedgerService interface {
	EarnForDrink(ctx context.Context, userID uuid.UUID, drink string, idempotencyKey *string) (*domain.LedgerResult, error)
	EarnForAmount(ctx context.Context, userID uuid.UUID, dollars float64, idempotencyKey *string) (*domain.LedgerResult, error)
}

type RewardService interface {
	ListAll(ctx context.Context) ([]domain.Reward, error)
	CreateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	UpdateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	CompleteRedemption(ctx context.Context, id uuid.UUID) (*domain.Redemption, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error)
}

type AnalyticsService interface {
	Overview(ctx context.Context, days int) (*domain.Analytics, error)
}

type BirthdaySweeper interface {
	Sweep(ctx context.Context, today time.Time) (int, error)
}

type AdminHandler struct {
	profileService   ProfileService
	ledgerService    LedgerService
	rewardService    RewardService
	settingsService  SettingsService
	analyticsService AnalyticsService
	birthday         BirthdaySweeper
	now              func() time.Time
}

func New(
	profileService ProfileService,
	ledgerService LedgerService,
	rewardService RewardService,
	settingsService SettingsService,
	analyticsService AnalyticsService,
	birthday BirthdaySweeper,
) *AdminHandler {
	return &AdminHandler{
		profileService:   profileService,
		ledgerService:    ledgerService,
		rewardService:    rewardService,
		settingsService:  settingsService,
		analyticsService: analyticsService,
		birthday:         birthday,
		now:              time.Now,
	}
}

func pathID(w http.ResponseWriter, r *http.Request, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+what+" id")
		return uuid.Nil, false
	}
	return id, true
}

// decode reads and validates a JSON body, writing the error response itself.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

// SearchUsers godoc
//
//	@Summary		Search members
//	@Description	Case-insensitive substring match on email or full name, or an exact referral code. Ordered by email.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			q		query		string	false	"Search text"
//	@Param			limit	query		int		false	"Page size (default 50, max 200)"
//	@Success		200		{array}		dto.MemberDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	profiles, err := h.profileService.Search(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberDTOs(profiles))
}

// AddPoints godoc
//
//	@Summary		Credit purchase points
//	@Description	Credit points for a drink from the drink table or for a dollar amount (1 point per whole dollar).
//	@Description	A repeated Idempotency-Key returns the original result without crediting again.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id				path		string					true	"Member user id"
//	@Param			Idempotency-Key	header		string					false	"Client supplied idempotency key"
//	@Param			request			body		dto.AddPointsRequestDTO	true	"Drink or amount"
//	@Success		200				{object}	dto.LedgerResultDTO
//	@Failure		400				{object}	utils.Response	"Invalid request"
//	@Failure		404				{object}	utils.Response	"Profile not found"
//	@Failure		409				{object}	utils.Response	"Idempotency key reused or concurrency conflict"
//	@Failure		422				{object}	utils.Response	"Unknown drink or invalid amount"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/points [post]
func (h *AdminHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}
	var key *string
	if raw := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader)); raw != "" {
		if len(raw) > maxIdempotencyKeyLen {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Idempotency-Key is too long")
			return
		}
		key = &raw
	}
	var req dto.AddPointsRequestDTO
	if !decode(w, r, &req) {
		return
	}

	var (
		result *domain.LedgerResult
		err    error
	)
	if req.Drink != nil {
		result, err = h.ledgerService.EarnForDrink(r.Context(), userID, *req.Drink, key)
	} else {
		result, err = h.ledgerService.EarnForAmount(r.Context(), userID, *req.Amount, key)
	}
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LedgerResultDTO{
		NewBalance: result.NewBalance,
		EntryID:    result.EntryID.String(),
	})
}

// SetRole godoc
//
//	@Summary		Change a member's role
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string					true	"Member user id"
//	@Param			request	body	dto.SetRoleRequestDTO	true	"New role"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		422	{object}	utils.Response	"Invalid role"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/role [put]
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}
	var req dto.SetRoleRequestDTO
	if !decode(w, r, &req) {
		return
	}
	if err := h.profileService.SetRole(r.Context(), userID, domain.Role(req.Role)); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRewards godoc
//
//	@Summary		List all rewards
//	@Description	Active and inactive rewards.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RewardResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/rewards [get]
func (h *AdminHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardService.ListAll(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRewardDTOs(rewards))
}

// CreateReward godoc
//
//	@Summary		Create a reward
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RewardRequestDTO	true	"Reward"
//	@Success		201		{object}	dto.RewardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/rewards [post]
func (h *AdminHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	var req dto.RewardRequestDTO
	if !decode(w, r, &req) {
		return
	}
	reward, err := h.rewardService.CreateReward(r.Context(), req.ToDomain(uuid.Nil))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRewardDTO(reward))
}

// UpdateReward godoc
//
//	@Summary		Update a reward
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Reward id"
//	@Param			request	body		dto.RewardRequestDTO	true	"Reward"
//	@Success		200		{object}	dto.RewardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Reward not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/rewards/{id} [put]
func (h *AdminHandler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	rewardID, ok := pathID(w, r, "reward")
	if !ok {
		return
	}
	var req dto.RewardRequestDTO
	if !decode(w, r, &req) {
		return
	}
	reward, err := h.rewardService.UpdateReward(r.Context(), req.ToDomain(rewardID))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRewardDTO(reward))
}

// CompleteRedemption godoc
//
//	@Summary		Mark a redemption as handed over
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Redemption id"
//	@Success		200	{object}	dto.RedemptionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid redemption id"
//	@Failure		404	{object}	utils.Response	"Redemption not found"
//	@Failure		409	{object}	utils.Response	"Redemption already completed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/redemptions/{id}/complete [post]
func (h *AdminHandler) CompleteRedemption(w http.ResponseWriter, r *http.Request) {
	redemptionID, ok := pathID(w, r, "redemption")
	if !ok {
		return
	}
	redemption, err := h.rewardService.CompleteRedemption(r.Context(), redemptionID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRedemptionDTO(redemption))
}

// GetSettings godoc
//
//	@Summary		Get program settings
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettingsDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettingsDTO(settings))
}

// UpdateSettings godoc
//
//	@Summary		Replace program settings
//	@Description	Stores rank thresholds, drink points, discounts and bonuses, then recomputes every member's rank.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettingsDTO	true	"Settings"
//	@Success		200		{object}	dto.SettingsDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Invalid settings"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsDTO
	if !decode(w, r, &req) {
		return
	}
	settings, err := h.settingsService.Update(r.Context(), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettingsDTO(settings))
}

// GetAnalytics godoc
//
//	@Summary		Program analytics
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			days	query		int	false	"Length of the daily series (default 30, max 365)"
//	@Success		200		{object}	dto.AnalyticsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid days"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/analytics [get]
func (h *AdminHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
		days = n
	}
	analytics, err := h.analyticsService.Overview(r.Context(), days)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAnalyticsDTO(analytics))
}

// RunBirthdaySweep godoc
//
//	@Summary		Grant birthday bonuses now
//	@Description	Runs the birthday sweep for the given date, today by default. Members already paid this year are skipped.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Sweep date (YYYY-MM-DD)"
//	@Success		200		{object}	dto.BirthdaySweepResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		422		{object}	utils.Response	"Date outside the current year"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/birthday-bonuses [post]
func (h *AdminHandler) RunBirthdaySweep(w http.ResponseWriter, r *http.Request) {
	day := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "date must match 2006-01-02")
			return
		}
		if parsed.Year() != day.Year() {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "date must fall in the current year")
			return
		}
		day = parsed
	}
	granted, err := h.birthday.Sweep(r.Context(), day)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBirthdaySweepDTO(day, granted))
}
