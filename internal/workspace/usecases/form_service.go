package usecases

//go:generate mockgen -source=./form_service.go -destination=../../../test/unit/doubles/workspace/usecases/form_service_mock.go -package=usecases -mock_names=FormService=MockFormService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
)

type FormService interface {
	ListForms(ctx context.Context) []FormSpec
	OpenForm(ctx context.Context, name string, identifier shareddomain.ID, quickAdd bool) (FormSpec, *Form, error)
	SubmitForm(ctx context.Context, name string, values map[string]any) (shareddomain.Record, error)
	SubmitEdit(ctx context.Context, name string, identifier shareddomain.ID, values map[string]any) (shareddomain.Record, error)
	AddDialog(ctx context.Context) []AddDialogGroup
}

func NewFormService(catalog Catalog, records RecordService, notifier Notifier) *SimpleFormService {
	return &SimpleFormService{
		catalog:  catalog,
		records:  records,
		notifier: notifier,
	}
}

var _ FormService = (*SimpleFormService)(nil)

type SimpleFormService struct {
	catalog  Catalog
	records  RecordService
	notifier Notifier
}

func (s *SimpleFormService) ListForms(ctx context.Context) []FormSpec {
	return s.catalog.Forms()
}

func (s *SimpleFormService) AddDialog(ctx context.Context) []AddDialogGroup {
	return s.catalog.AddDialog()
}

// OpenForm returns a creation form when identifier is empty and an edit form
// over the stored record otherwise.
func (s *SimpleFormService) OpenForm(ctx context.Context, name string, identifier shareddomain.ID, quickAdd bool) (FormSpec, *Form, error) {
	spec, err := s.catalog.Form(name)
	if err != nil {
		return FormSpec{}, nil, err
	}

	if identifier == "" {
		return spec, NewCreateForm(spec.Groups, quickAdd), nil
	}

	record, err := s.records.Get(ctx, spec.Resource, identifier)
	if err != nil {
		return FormSpec{}, nil, fmt.Errorf("loading %s %s: %w", spec.Resource.Singular(), identifier, err)
	}

	return spec, NewEditForm(spec.Groups, record), nil
}

func (s *SimpleFormService) SubmitForm(ctx context.Context, name string, values map[string]any) (shareddomain.Record, error) {
	spec, err := s.catalog.Form(name)
	if err != nil {
		return nil, err
	}

	form := NewCreateForm(spec.Groups, false)
	form.ApplyValues(values)

	var created shareddomain.Record
	err = form.Save(ctx, func(ctx context.Context, values map[string]any) error {
		singular := spec.Resource.Singular()
		s.notifier.Show(ctx, fmt.Sprintf("Saving %s...", singular), domain.CategoryLoading)

		record, err := s.records.Create(ctx, spec.Resource, values)
		if err != nil {
			s.notifier.Show(ctx, err.Error(), domain.CategoryError)
			return fmt.Errorf("creating %s: %w", singular, err)
		}

		s.notifier.Show(ctx, fmt.Sprintf("Successfully created %s", withArticle(singular)), domain.CategorySuccess)
		created = record
		return nil
	})
	if err != nil {
		logSubmitError(name, err)
		return nil, err
	}

	return created, nil
}

func (s *SimpleFormService) SubmitEdit(
	ctx context.Context,
	name string,
	identifier shareddomain.ID,
	values map[string]any,
) (shareddomain.Record, error) {
	spec, form, err := s.OpenForm(ctx, name, identifier, false)
	if err != nil {
		return nil, err
	}
	form.ApplyValues(values)

	var updated shareddomain.Record
	err = form.Save(ctx, func(ctx context.Context, values map[string]any) error {
		singular := spec.Resource.Singular()
		s.notifier.Show(ctx, fmt.Sprintf("Saving %s...", singular), domain.CategoryLoading)

		record, err := s.records.Update(ctx, spec.Resource, identifier, values)
		if err != nil {
			s.notifier.Show(ctx, err.Error(), domain.CategoryError)
			return fmt.Errorf("updating %s %s: %w", singular, identifier, err)
		}

		s.notifier.Show(ctx, fmt.Sprintf("Successfully updated %s", withArticle(singular)), domain.CategorySuccess)
		updated = record
		return nil
	})
	if err != nil {
		logSubmitError(name, err)
		return nil, err
	}

	return updated, nil
}

func logSubmitError(form string, err error) {
	var failure ValidationFailure
	if errors.As(err, &failure) {
		slog.Debug("form rejected", slog.String("form", form), slog.Any("fields", failure.Fields))
		return
	}
	slog.Error("submitting form", slog.String("form", form), slog.String("error", err.Error()))
}

func withArticle(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}
