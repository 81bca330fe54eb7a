package controllers

import (
	"errors"
	"net/http"

	"github.com/Omar8345/readright-backend/application/ports/inbound"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/Omar8345/readright-backend/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type ArticleController interface {
	SimplifyArticle(c *gin.Context)
	GetArticle(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type articleController struct {
	pipeline inbound.ArticlePipelinePort
}

func NewArticleController(pipeline inbound.ArticlePipelinePort) ArticleController {
	return &articleController{
		pipeline: pipeline,
	}
}

func (a *articleController) SimplifyArticle(c *gin.Context) {
	var request dto.SimplifyArticleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dto.ErrorBody{
				Kind:    string(domain.ValidationError),
				Message: "request body must be JSON with a text or url field",
			},
		})
		return
	}

	record, err := a.pipeline.Process(c.Request.Context(), inbound.ProcessArticleParams{
		Text: request.Text,
		URL:  request.URL,
	})
	if err != nil {
		a.abortWithStageError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResponseFromRecord(record))
}

func (a *articleController) GetArticle(c *gin.Context) {
	record, err := a.pipeline.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{
				Error: dto.ErrorBody{
					Kind:    string(domain.PersistenceError),
					Message: "no article found for the given id",
				},
			})
			return
		}
		a.abortWithStageError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResponseFromRecord(record))
}

func (a *articleController) RegisterRoutes(g *gin.Engine) {
	g.POST("/articles", a.SimplifyArticle)
	g.GET("/articles/:id", a.GetArticle)
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (a *articleController) abortWithStageError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	c.AbortWithStatusJSON(statusForKind(kind), dto.ErrorResponse{
		Error: dto.ErrorBody{
			Kind:    string(kind),
			Message: err.Error(),
		},
	})
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.ValidationError:
		return http.StatusBadRequest
	case domain.ExtractionError:
		return http.StatusNotFound
	case domain.GenerationError, domain.SynthesisError:
		return http.StatusBadGateway
	case domain.PersistenceError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
