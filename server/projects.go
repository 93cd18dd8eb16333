package server

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const projectColumns = `id, user_id, name, category, description, deadline, priority, status,
	notes, subtasks, attachments, created_at`

// scanProject reads one project row, decoding the JSONB sequences
func scanProject(row interface{ Scan(...interface{}) error }) (model.Project, error) {
	var p model.Project
	var notes, subtasks, attachments []byte
	var createdAt time.Time

	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Category, &p.Description,
		&p.Deadline, &p.Priority, &p.Status, &notes, &subtasks, &attachments, &createdAt)
	if err != nil {
		return model.Project{}, err
	}

	p.CreatedAt = createdAt
	p.Notes = []model.Note{}
	p.Subtasks = []model.Subtask{}
	p.Attachments = []model.Attachment{}
	json.Unmarshal(notes, &p.Notes)
	json.Unmarshal(subtasks, &p.Subtasks)
	json.Unmarshal(attachments, &p.Attachments)
	return p, nil
}

// handleListProjects returns all projects owned by the caller, newest first
func (s *Server) handleListProjects(c echo.Context) error {
	userID := c.Get("user_id").(string)

	rows, err := s.db.Query(`
		SELECT `+projectColumns+` FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		c.Logger().Error("db error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			c.Logger().Error("scan error:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
		projects = append(projects, p)
	}

	return c.JSON(http.StatusOK, projects)
}

// handleInsertProject stores a new project owned by the caller and returns
// the resulting row. The server assigns id and created_at.
func (s *Server) handleInsertProject(c echo.Context) error {
	userID := c.Get("user_id").(string)

	var p model.Project
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if p.Name == "" || p.Category == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and category required"})
	}

	notes, subtasks, attachments := marshalSequences(&p)

	row := s.db.QueryRow(`
		INSERT INTO projects (id, user_id, name, category, description, deadline, priority, status,
			notes, subtasks, attachments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING `+projectColumns,
		uuid.New().String(), userID, p.Name, p.Category, p.Description, p.Deadline,
		p.Priority, p.Status, notes, subtasks, attachments,
	)

	stored, err := scanProject(row)
	if err != nil {
		c.Logger().Error("db error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, stored)
}

// handleUpdateProject replaces a project row owned by the caller and returns
// the resulting row
func (s *Server) handleUpdateProject(c echo.Context) error {
	userID := c.Get("user_id").(string)
	id := c.Param("id")

	var p model.Project
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	notes, subtasks, attachments := marshalSequences(&p)

	row := s.db.QueryRow(`
		UPDATE projects SET name = $3, category = $4, description = $5, deadline = $6,
			priority = $7, status = $8, notes = $9, subtasks = $10, attachments = $11
		WHERE id = $1 AND user_id = $2
		RETURNING `+projectColumns,
		id, userID, p.Name, p.Category, p.Description, p.Deadline,
		p.Priority, p.Status, notes, subtasks, attachments,
	)

	stored, err := scanProject(row)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
	}
	if err != nil {
		c.Logger().Error("db error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, stored)
}

// handleDeleteProject removes a project owned by the caller
func (s *Server) handleDeleteProject(c echo.Context) error {
	userID := c.Get("user_id").(string)
	id := c.Param("id")

	result, err := s.db.Exec(`
		DELETE FROM projects WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		c.Logger().Error("db error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// marshalSequences encodes the ordered sequences for JSONB storage, mapping
// nil to empty arrays so decoding always yields a sequence
func marshalSequences(p *model.Project) ([]byte, []byte, []byte) {
	if p.Notes == nil {
		p.Notes = []model.Note{}
	}
	if p.Subtasks == nil {
		p.Subtasks = []model.Subtask{}
	}
	if p.Attachments == nil {
		p.Attachments = []model.Attachment{}
	}
	notes, _ := json.Marshal(p.Notes)
	subtasks, _ := json.Marshal(p.Subtasks)
	attachments, _ := json.Marshal(p.Attachments)
	return notes, subtasks, attachments
}
