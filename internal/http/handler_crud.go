package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/staffdesk/internal/http/middleware"
	"github.com/nurpe/staffdesk/internal/model"
)

func (h *Handler) registerCRUD(group *gin.RouterGroup) {
	group.POST("/clients", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateClient)
	})
	group.PUT("/clients/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.Client, id uuid.UUID) { e.ID = id }, h.staffing.UpdateClient)
	})
	group.DELETE("/clients/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteClient)
	})

	group.POST("/contracts", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateContract)
	})
	group.PUT("/contracts/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.Contract, id uuid.UUID) { e.ID = id }, h.staffing.UpdateContract)
	})
	group.DELETE("/contracts/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteContract)
	})

	group.POST("/positions", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreatePosition)
	})
	group.PUT("/positions/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.Position, id uuid.UUID) { e.ID = id }, h.staffing.UpdatePosition)
	})
	group.DELETE("/positions/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeletePosition)
	})

	group.POST("/professionals", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateProfessional)
	})
	group.PUT("/professionals/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.Professional, id uuid.UUID) { e.ID = id }, h.staffing.UpdateProfessional)
	})
	group.DELETE("/professionals/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteProfessional)
	})

	group.POST("/allocations", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateAllocation)
	})
	group.PUT("/allocations/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.Allocation, id uuid.UUID) { e.ID = id }, h.staffing.UpdateAllocation)
	})
	group.DELETE("/allocations/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteAllocation)
	})

	group.POST("/factory/projects", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateFactoryProject)
	})
	group.PUT("/factory/projects/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.FactoryProject, id uuid.UUID) { e.ID = id }, h.staffing.UpdateFactoryProject)
	})
	group.DELETE("/factory/projects/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteFactoryProject)
	})

	group.POST("/factory/allocations", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateFactoryAllocation)
	})
	group.PUT("/factory/allocations/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.FactoryAllocation, id uuid.UUID) { e.ID = id }, h.staffing.UpdateFactoryAllocation)
	})
	group.DELETE("/factory/allocations/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteFactoryAllocation)
	})

	group.POST("/stacks", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateStack)
	})
	group.PUT("/stacks/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.Stack, id uuid.UUID) { e.ID = id }, h.staffing.UpdateStack)
	})
	group.DELETE("/stacks/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteStack)
	})

	group.POST("/stack-categories", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateStackCategory)
	})
	group.PUT("/stack-categories/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.StackCategory, id uuid.UUID) { e.ID = id }, h.staffing.UpdateStackCategory)
	})
	group.DELETE("/stack-categories/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteStackCategory)
	})

	group.POST("/seniorities", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateSeniority)
	})
	group.PUT("/seniorities/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.Seniority, id uuid.UUID) { e.ID = id }, h.staffing.UpdateSeniority)
	})
	group.DELETE("/seniorities/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteSeniority)
	})

	group.POST("/general-seniorities", func(c *gin.Context) {
		handleCreate(h, c, h.staffing.CreateGeneralSeniority)
	})
	group.PUT("/general-seniorities/:id", func(c *gin.Context) {
		handleUpdate(h, c, func(e *model.GeneralSeniority, id uuid.UUID) { e.ID = id }, h.staffing.UpdateGeneralSeniority)
	})
	group.DELETE("/general-seniorities/:id", func(c *gin.Context) {
		handleDelete(h, c, h.staffing.DeleteGeneralSeniority)
	})
}

func handleCreate[T any](h *Handler, c *gin.Context, create func(context.Context, model.Principal, *T) error) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := create(c.Request.Context(), principal, &entity); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

func handleUpdate[T any](h *Handler, c *gin.Context, setID func(*T, uuid.UUID), update func(context.Context, model.Principal, *T) error) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setID(&entity, id)

	if err := update(c.Request.Context(), principal, &entity); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func handleDelete(h *Handler, c *gin.Context, remove func(context.Context, model.Principal, uuid.UUID) error) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := remove(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
