package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-api/models"

	"github.com/gin-gonic/gin"
)

type fakeFAQStore struct {
	faqs   map[int]*models.FAQ
	nextID int
}

func newFakeFAQStore(faqs ...models.FAQ) *fakeFAQStore {
	store := &fakeFAQStore{faqs: map[int]*models.FAQ{}, nextID: 1}
	for i := range faqs {
		f := faqs[i]
		store.faqs[f.ID] = &f
		if f.ID >= store.nextID {
			store.nextID = f.ID + 1
		}
	}
	return store
}

func (s *fakeFAQStore) GetAll() ([]models.FAQ, error) {
	out := []models.FAQ{}
	for _, f := range s.faqs {
		out = append(out, *f)
	}
	return out, nil
}

func (s *fakeFAQStore) GetByID(id int) (*models.FAQ, error) {
	if f, ok := s.faqs[id]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, errors.New("no rows in result set")
}

func (s *fakeFAQStore) Create(f *models.FAQ) error {
	f.ID = s.nextID
	s.nextID++
	s.faqs[f.ID] = f
	return nil
}

func (s *fakeFAQStore) Update(f *models.FAQ) error {
	if _, ok := s.faqs[f.ID]; !ok {
		return errors.New("no rows in result set")
	}
	copied := *f
	s.faqs[f.ID] = &copied
	return nil
}

func (s *fakeFAQStore) Delete(id int) (bool, error) {
	if _, ok := s.faqs[id]; !ok {
		return false, nil
	}
	delete(s.faqs, id)
	return true, nil
}

func faqRouter(store FAQStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewFAQControllerWithStore(store)
	router := gin.New()
	router.GET("/api/faqs/:id", ctrl.GetFAQByID)
	router.PATCH("/api/faqs/:id", ctrl.UpdateFAQ)
	router.DELETE("/api/faqs/:id", ctrl.DeleteFAQ)
	return router
}

func TestDeleteFAQNotFound(t *testing.T) {
	router := faqRouter(newFakeFAQStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/faqs/99", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteFAQThenGet(t *testing.T) {
	store := newFakeFAQStore(models.FAQ{ID: 5, Question: "Shipping?", Answer: "3 days"})
	router := faqRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/faqs/5", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("delete body = %q, want empty", w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/faqs/5", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("get-after-delete status = %d, want 404", w.Code)
	}
}

func TestUpdateFAQRequiresAField(t *testing.T) {
	store := newFakeFAQStore(models.FAQ{ID: 1, Question: "Q", Answer: "A"})
	router := faqRouter(store)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"no fields", `{}`, http.StatusBadRequest},
		{"empty question", `{"question": ""}`, http.StatusBadRequest},
		{"empty answer", `{"answer": ""}`, http.StatusBadRequest},
		{"order only", `{"order": 3}`, http.StatusOK},
		{"question only", `{"question": "Returns?"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/faqs/1", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestUpdateFAQUnknownID(t *testing.T) {
	router := faqRouter(newFakeFAQStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/faqs/7", strings.NewReader(`{"order": 1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
