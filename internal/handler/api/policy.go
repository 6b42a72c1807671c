package api

import (
	"net/http"

	reqdto "barbershop-booking/internal/handler/dto/request"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errEmptyPolicyUpdate = errs.New("empty policy update")

type PolicyHandler struct {
	cmds commands.PolicyCommands
	q    queries.PolicyQueries
}

func NewPolicyHandler(cmds commands.PolicyCommands, q queries.PolicyQueries) *PolicyHandler {
	return &PolicyHandler{cmds: cmds, q: q}
}

// @Summary Get booking policy
// @Description Opening hours, cancellation notice and midweek discount
// @Tags policy
// @Produce json
// @Success 200 {object} resdto.PolicyResponse
// @Router /policy [get]
func (h *PolicyHandler) Get(c *gin.Context) {
	h.respond(c, h.q.Current(c.Request.Context()))
}

// @Summary Update booking policy
// @Description Partially update the booking policy. Changes apply to the next request
// @Tags policy
// @Accept json
// @Produce json
// @Param request body reqdto.UpdatePolicyRequest true "Fields to change"
// @Success 200 {object} resdto.PolicyResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /policy [patch]
func (h *PolicyHandler) Update(c *gin.Context) {
	var req reqdto.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptyPolicyUpdate, "No fields to update", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respond(c, view)
}

func (h *PolicyHandler) respond(c *gin.Context, view *queries.PolicyView) {
	res, err := resdto.FromPolicyView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build policy", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
