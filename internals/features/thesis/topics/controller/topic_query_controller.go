// file: internals/features/thesis/topics/controller/topic_query_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
	topicService "skripsiku_backend/internals/features/thesis/topics/service"
	helper "skripsiku_backend/internals/helpers"
)

/* ============================================
   Controller: browse topik (public)
============================================ */

type TopicQueryController struct {
	DB    *gorm.DB
	Query *topicService.QueryService
}

func NewTopicQueryController(db *gorm.DB) *TopicQueryController {
	return &TopicQueryController{DB: db, Query: topicService.NewQueryService(db)}
}

func parseUUIDQuery(c *fiber.Ctx, key string) *uuid.UUID {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// GET /api/public/topics
// ?period_id= &category_id= &major_id= &status= &available=true &q= &page= &per_page=
func (ctl *TopicQueryController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	f := topicService.TopicFilter{
		PeriodID:      parseUUIDQuery(c, "period_id"),
		CategoryID:    parseUUIDQuery(c, "category_id"),
		MajorID:       parseUUIDQuery(c, "major_id"),
		OnlyAvailable: c.Query("available") == "true",
		Search:        strings.TrimSpace(c.Query("q")),
		Offset:        paging.Offset,
		Limit:         paging.Limit,
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		st := topicModel.TeacherStatus(s)
		if !st.IsValid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status topik tidak valid")
		}
		f.TeacherStatus = &st
	}

	topics, total, err := ctl.Query.ListTopics(f)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar topik", topics, &p)
}

// GET /api/public/topics/:id
func (ctl *TopicQueryController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	topic, err := ctl.Query.GetTopicDetail(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail topik", topic)
}
