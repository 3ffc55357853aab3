package memory

import (
	"context"
	"strconv"

	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
)

type templateRepo struct {
	store *Store
}

func (r *templateRepo) List(ctx context.Context) ([]model.InterviewTemplate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.InterviewTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, cloneTemplate(t))
	}
	return out, nil
}

func (r *templateRepo) Get(ctx context.Context, id string) (*model.InterviewTemplate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.templates {
		if t.ID == id {
			found := cloneTemplate(t)
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *templateRepo) Create(ctx context.Context, template model.InterviewTemplate) (*model.InterviewTemplate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.templateSeq++
	template.ID = "t" + strconv.Itoa(s.templateSeq)
	s.templates = append(s.templates, cloneTemplate(template))
	return &template, nil
}

func (r *templateRepo) Update(ctx context.Context, id string, patch model.TemplatePatch) (*model.InterviewTemplate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == id {
			patch.Apply(&s.templates[i])
			s.templates[i].ID = id // the stored id always wins
			merged := cloneTemplate(s.templates[i])
			return &merged, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *templateRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
