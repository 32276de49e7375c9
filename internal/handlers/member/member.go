package member

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/dto"
	"github.com/GlebRadaev/brewpoints/internal/handlers/httperr"
	"github.com/GlebRadaev/brewpoints/internal/service/profileservice"
	"github.com/GlebRadaev/brewpoints/pkg/auth"
	"github.com/GlebRadaev/brewpoints/pkg/utils"
	"github.com/GlebRadaev/brewpoints/pkg/validate"
)

//go:generate mockgen -source=member.go -destination=mock_member.go -package=member

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ProfileView, error)
	UpdateDetails(ctx context.Context, userID uuid.UUID, input profileservice.DetailsInput) (*domain.ProfileView, error)
}

type LedgerService interface {
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

type RewardService interface {
	ListActive(ctx context.Context) ([]domain.Reward, error)
	Redeem(ctx context.Context, userID, rewardID uuid.UUID) (*domain.RedeemResult, error)
	ListRedemptions(ctx context.Context, userID uuid.UUID) ([]domain.Redemption, error)
}

type ReferralService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*domain.ReferralSummary, error)
}

type MemberHandler struct {
	profileService  ProfileService
	ledgerService   LedgerService
	rewardService   RewardService
	referralService ReferralService
}

func New(profileService ProfileService, ledgerService LedgerService, rewardService RewardService, referralService ReferralService) *MemberHandler {
	return &MemberHandler{
		profileService:  profileService,
		ledgerService:   ledgerService,
		rewardService:   rewardService,
		referralService: referralService,
	}
}

func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}

// GetProfile godoc
//
//	@Summary		Get own profile
//	@Description	Profile with balance, lifetime points, rank, discount and progress to the next rank.
//	@Tags			Member
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *MemberHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	view, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponseDTO(view))
}

// UpdateProfile godoc
//
//	@Summary		Update own profile
//	@Description	Change name, phone and birthday. Points, rank and referral data cannot be changed here.
//	@Tags			Member
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile details"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [patch]
func (h *MemberHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	birthday, err := dto.ParseDate(req.Birthday)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "birthday must match 2006-01-02")
		return
	}

	view, err := h.profileService.UpdateDetails(r.Context(), userID, profileservice.DetailsInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Birthday: birthday,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponseDTO(view))
}

// GetTransactions godoc
//
//	@Summary		Get own points history
//	@Description	Ledger entries, newest first.
//	@Tags			Member
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 50, max 500)"
//	@Param			offset	query		int	false	"Entries to skip"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid pagination"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *MemberHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	txs, err := h.ledgerService.History(r.Context(), userID, limit, offset)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTOs(txs))
}

// GetRewards godoc
//
//	@Summary		List the reward catalog
//	@Description	Active rewards ordered by points required.
//	@Tags			Member
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RewardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rewards [get]
func (h *MemberHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardService.ListActive(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRewardDTOs(rewards))
}

// Redeem godoc
//
//	@Summary		Redeem a reward
//	@Description	Spend points on a reward. Creates a pending redemption.
//	@Tags			Member
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Reward id"
//	@Success		200	{object}	dto.RedeemResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid reward id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient points"
//	@Failure		404	{object}	utils.Response	"Reward not found"
//	@Failure		409	{object}	utils.Response	"Reward inactive or out of stock"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rewards/{id}/redeem [post]
func (h *MemberHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	rewardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid reward id")
		return
	}

	result, err := h.rewardService.Redeem(r.Context(), userID, rewardID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemResponseDTO{
		NewBalance:   result.NewBalance,
		RedemptionID: result.RedemptionID.String(),
	})
}

// GetRedemptions godoc
//
//	@Summary		Get own redemptions
//	@Tags			Member
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RedemptionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/redemptions [get]
func (h *MemberHandler) GetRedemptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	redemptions, err := h.rewardService.ListRedemptions(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRedemptionDTOs(redemptions))
}

// GetReferral godoc
//
//	@Summary		Get own referral summary
//	@Description	Referral code, number of referred members and points earned from referrals.
//	@Tags			Member
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referral [get]
func (h *MemberHandler) GetReferral(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	summary, err := h.referralService.Summary(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralResponseDTO{
		Code:          summary.Code,
		ReferredCount: summary.ReferredCount,
		PointsEarned:  summary.PointsEarned,
		ReferralBonus: summary.ReferralBonus,
	})
}

// queryInt returns 0 for a missing parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
