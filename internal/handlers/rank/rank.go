package rank

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/dto"
	"github.com/GlebRadaev/brewpoints/internal/handlers/httperr"
	"github.com/GlebRadaev/brewpoints/pkg/utils"
)

//go:generate mockgen -source=rank.go -destination=mock_rank.go -package=rank

type Service interface {
	RankInfo(ctx context.Context, lifetimePoints int) (*domain.RankInfo, error)
}

type RankHandler struct {
	service Service
}

func New(service Service) *RankHandler {
	return &RankHandler{service: service}
}

// GetRank godoc
//
//	@Summary		Evaluate rank rules
//	@Description	Rank, discount and progress for a lifetime points total under the current thresholds.
//	@Tags			Rank
//	@Produce		json
//	@Param			lifetime_points	query		int	true	"Lifetime points"
//	@Success		200				{object}	dto.RankInfoDTO
//	@Failure		400				{object}	utils.Response	"Invalid lifetime_points"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/rank [get]
func (h *RankHandler) GetRank(w http.ResponseWriter, r *http.Request) {
	points, err := strconv.Atoi(r.URL.Query().Get("lifetime_points"))
	if err != nil || points < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "lifetime_points must be a non-negative integer")
		return
	}
	info, err := h.service.RankInfo(r.Context(), points)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRankInfoDTO(*info))
}
