package http

import (
	"errors"
	"io"
	"net/http"

	"content-pipeline/domain/dto"
	"content-pipeline/usecase"

	"github.com/gin-gonic/gin"
)

type IPipelineHandler interface {
	CreateAccount(ctx *gin.Context)
	ListAccounts(ctx *gin.Context)
	GetAccount(ctx *gin.Context)
	UpdateAccountStatus(ctx *gin.Context)
	ListAccountVideos(ctx *gin.Context)

	CreateTrend(ctx *gin.Context)
	TopTrends(ctx *gin.Context)

	CreateVideo(ctx *gin.Context)
	GetVideo(ctx *gin.Context)
	UpdateVideoStatus(ctx *gin.Context)
	MarkVideoUploaded(ctx *gin.Context)

	RecordAnalytics(ctx *gin.Context)
	ListAnalytics(ctx *gin.Context)
	AnalyticsSummary(ctx *gin.Context)

	CreateSound(ctx *gin.Context)
	ListSounds(ctx *gin.Context)
	UseSound(ctx *gin.Context)
}

type PipelineHandler struct {
	pipelineUsecase usecase.IPipelineUsecase
}

func NewPipelineHandler(uc usecase.IPipelineUsecase) IPipelineHandler {
	return &PipelineHandler{pipelineUsecase: uc}
}

func (h *PipelineHandler) CreateAccount(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	account, err := h.pipelineUsecase.RegisterAccount(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, account)
}

func (h *PipelineHandler) ListAccounts(ctx *gin.Context) {
	accounts, err := h.pipelineUsecase.ListAccounts(ctx.Request.Context(), ctx.Query("platform"), queryInt(ctx, "limit"), queryInt(ctx, "offset"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, accounts)
}

func (h *PipelineHandler) GetAccount(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	account, err := h.pipelineUsecase.GetAccount(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, account)
}

func (h *PipelineHandler) UpdateAccountStatus(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	if err := h.pipelineUsecase.UpdateAccountStatus(ctx.Request.Context(), id, req.Status); err != nil {
		respondError(ctx, err)
		return
	}
	account, err := h.pipelineUsecase.GetAccount(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, account)
}

func (h *PipelineHandler) ListAccountVideos(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	videos, err := h.pipelineUsecase.ListAccountVideos(ctx.Request.Context(), id, queryInt(ctx, "limit"), queryInt(ctx, "offset"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, videos)
}

func (h *PipelineHandler) CreateTrend(ctx *gin.Context) {
	var req dto.CreateTrendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	trend, err := h.pipelineUsecase.AddTrend(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, trend)
}

func (h *PipelineHandler) TopTrends(ctx *gin.Context) {
	trends, err := h.pipelineUsecase.TopTrends(ctx.Request.Context(), ctx.Query("niche"), queryInt(ctx, "limit"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, trends)
}

func (h *PipelineHandler) CreateVideo(ctx *gin.Context) {
	var req dto.CreateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	video, err := h.pipelineUsecase.DraftVideo(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, video)
}

func (h *PipelineHandler) GetVideo(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	video, err := h.pipelineUsecase.GetVideo(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, video)
}

func (h *PipelineHandler) UpdateVideoStatus(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	if err := h.pipelineUsecase.UpdateVideoStatus(ctx.Request.Context(), id, req.Status); err != nil {
		respondError(ctx, err)
		return
	}
	video, err := h.pipelineUsecase.GetVideo(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, video)
}

func (h *PipelineHandler) MarkVideoUploaded(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req dto.MarkUploadedRequest
	// empty body is allowed, including an empty chunked one
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(ctx, err)
		return
	}
	if err := h.pipelineUsecase.MarkVideoUploaded(ctx.Request.Context(), id, req); err != nil {
		respondError(ctx, err)
		return
	}
	video, err := h.pipelineUsecase.GetVideo(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, video)
}

func (h *PipelineHandler) RecordAnalytics(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req dto.RecordAnalyticsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	snapshot, err := h.pipelineUsecase.RecordAnalytics(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, snapshot)
}

func (h *PipelineHandler) ListAnalytics(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	list, err := h.pipelineUsecase.ListAnalytics(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, list)
}

func (h *PipelineHandler) AnalyticsSummary(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	summary, err := h.pipelineUsecase.AnalyticsSummary(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, summary)
}

func (h *PipelineHandler) CreateSound(ctx *gin.Context) {
	var req dto.CreateSoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	sound, err := h.pipelineUsecase.AddTrendingSound(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, sound)
}

func (h *PipelineHandler) ListSounds(ctx *gin.Context) {
	sounds, err := h.pipelineUsecase.ListTrendingSounds(ctx.Request.Context(), ctx.Query("vibe"), queryInt(ctx, "limit"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, sounds)
}

func (h *PipelineHandler) UseSound(ctx *gin.Context) {
	soundID := ctx.Param("soundId")
	if err := h.pipelineUsecase.UseTrendingSound(ctx.Request.Context(), soundID); err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, gin.H{"sound_id": soundID})
}
