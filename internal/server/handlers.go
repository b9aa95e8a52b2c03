package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksmith/todo/internal/ops"
	"github.com/jacksmith/todo/internal/web"
)

type createRequest struct {
	Text string `json:"text"`
}

type updateRequest struct {
	ID        string  `json:"id"`
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// Web handlers

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// API handlers

func (s *Server) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, ops.ListTasks(s.store))
}

func (s *Server) handleCreate(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		s.writeError(c, err)
		return
	}

	var req createRequest
	if detail, err := createSchema.decode(body, &req); err != nil {
		s.logger.Debug("rejected create", "detail", detail)
		s.writeError(c, err)
		return
	}

	task, err := ops.AddTask(s.store, req.Text)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Debug("created task", "id", task.ID)
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdate(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		s.writeError(c, err)
		return
	}

	var req updateRequest
	if detail, err := updateSchema.decode(body, &req); err != nil {
		s.logger.Debug("rejected update", "detail", detail)
		s.writeError(c, err)
		return
	}

	task, err := ops.EditTask(s.store, req.ID, ops.TaskChanges{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Debug("updated task", "id", task.ID)
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDelete(c *gin.Context) {
	id := c.Query("id")

	removed, err := ops.DeleteTask(s.store, id)
	if err != nil {
		s.writeError(c, &ops.ValidationError{Message: "invalid or missing todo ID"})
		return
	}

	s.logger.Debug("deleted task", "id", id, "removed", removed)
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}

func (s *Server) handleMethodNotAllowed(c *gin.Context) {
	if allow := s.allowFor(c.Request.URL.Path); allow != "" {
		c.Header("Allow", allow)
	}
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"message": fmt.Sprintf("Method %s Not Allowed", c.Request.Method),
	})
}

func (s *Server) handleNoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
}

// readBody reads the request body up to maxBodySize.
func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &ops.ValidationError{Field: "body", Message: fmt.Sprintf("exceeds maximum size of %d bytes", maxBodySize)}
		}
		return nil, &ops.ValidationError{Field: "body", Message: "could not be read"}
	}
	return body, nil
}

// writeError maps err onto a status code and writes {"message": ...}.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case ops.IsValidation(err):
		status = http.StatusBadRequest
	case ops.IsNotFound(err):
		status = http.StatusNotFound
	default:
		s.logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
