package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/event"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/reports"
	"max.ks1230/slots-tracker/internal/model/storage"
)

const periodParam = "period"

func collectionParam(c *gin.Context) (string, bool) {
	collection := c.Param("collection")
	if !expense.IsCollection(collection) {
		respondError(c, errUnknownCollection)
		return "", false
	}
	return collection, true
}

// filterOf turns query parameters into a storage filter. period is special,
// every other parameter must equal the top-level field of the same name.
func filterOf(c *gin.Context) (storage.Filter, error) {
	filter := storage.Filter{Fields: map[string]string{}}
	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if key == periodParam {
			after, err := reports.PeriodStart(values[0])
			if err != nil {
				return storage.Filter{}, errBadPeriod
			}
			filter.After = after
			continue
		}
		filter.Fields[key] = values[0]
	}
	return filter, nil
}

func bindRecord(c *gin.Context) (record.Record, bool) {
	var doc record.Record
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		respondError(c, errMissingJSON)
		return nil, false
	}
	return doc, true
}

func (s *Server) list(c *gin.Context) {
	collection, ok := collectionParam(c)
	if !ok {
		return
	}
	filter, err := filterOf(c)
	if err != nil {
		respondError(c, err)
		return
	}

	rs, err := s.storage.List(c.Request.Context(), collection, filter)
	if err == nil {
		err = s.expand(c.Request.Context(), collection, rs...)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

func (s *Server) get(c *gin.Context) {
	collection, ok := collectionParam(c)
	if !ok {
		return
	}

	rec, err := s.storage.Get(c.Request.Context(), collection, c.Param("id"))
	if err == nil {
		err = s.expand(c.Request.Context(), collection, rec)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) create(c *gin.Context) {
	collection, ok := collectionParam(c)
	if !ok {
		return
	}
	doc, ok := bindRecord(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := s.link(ctx, collection, doc); err != nil {
		respondError(c, err)
		return
	}
	saved, err := s.storage.Insert(ctx, collection, doc)
	if err == nil {
		err = s.expand(ctx, collection, saved)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	id, _ := record.Identifier(saved)
	s.publish(ctx, collection, event.Created, id, saved)
	c.JSON(http.StatusCreated, saved)
}

// update replaces the stored document, the id in the path wins over any id in
// the body.
func (s *Server) update(c *gin.Context) {
	collection, ok := collectionParam(c)
	if !ok {
		return
	}
	doc, ok := bindRecord(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := s.link(ctx, collection, doc); err != nil {
		respondError(c, err)
		return
	}
	id := c.Param("id")
	saved, err := s.storage.Update(ctx, collection, id, doc)
	if err == nil {
		err = s.expand(ctx, collection, saved)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	s.publish(ctx, collection, event.Updated, id, saved)
	c.JSON(http.StatusOK, saved)
}

func (s *Server) remove(c *gin.Context) {
	collection, ok := collectionParam(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := s.storage.Deactivate(c.Request.Context(), collection, id); err != nil {
		respondError(c, err)
		return
	}
	s.publish(c.Request.Context(), collection, event.Deleted, id, nil)
	c.JSON(http.StatusOK, gin.H{record.IDField: record.Ref(id), "active": false})
}

// publish reports a change. The write already happened, so a failure is only
// logged.
func (s *Server) publish(ctx context.Context, collection string, action event.Action, id string, rec record.Record) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, event.Event{
		Collection: collection,
		Action:     action,
		ID:         id,
		At:         time.Now().UTC(),
		Record:     rec,
	})
	if err != nil {
		logger.Error("cannot publish event",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err),
		)
	}
}
