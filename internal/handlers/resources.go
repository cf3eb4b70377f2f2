package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"oleum/internal/assignment"
	"oleum/internal/catalog"
	applog "oleum/internal/log"
	"oleum/internal/repository"
	"oleum/internal/validation"
	"oleum/models"
)

// resource serves the JSON API of one catalog entity:
//
//	GET    {prefix}                 list
//	POST   {prefix}                 create
//	GET    {prefix}/{id}            show
//	PUT    {prefix}/{id}            update
//	DELETE {prefix}/{id}            delete, cascading into junctions where configured
//	GET    {prefix}/{id}/{children} list assignments
//	PUT    {prefix}/{id}/{children} replace assignments
type resource[T catalog.Named, F any] struct {
	kind        string
	prefix      string
	service     *catalog.Service[T, F]
	remove      func(ctx context.Context, id string) validation.Result
	assignments map[string]assignment.Kind
}

// EssentialOilResource handles /app/api/essential-oils.
func EssentialOilResource(w http.ResponseWriter, r *http.Request) {
	if services.EssentialOils == nil || assignments == nil {
		unavailable(w, r)
		return
	}
	resource[models.EssentialOil, repository.EssentialOilFilter]{
		kind:    "essential oil",
		prefix:  "/app/api/essential-oils",
		service: services.EssentialOils,
		remove:  assignments.CascadeDeleteEssentialOil,
		assignments: map[string]assignment.Kind{
			"effects":   assignment.EssentialOilEffects,
			"molecules": assignment.EssentialOilMolecules,
		},
	}.serve(w, r)
}

// EffectResource handles /app/api/effects.
func EffectResource(w http.ResponseWriter, r *http.Request) {
	if services.Effects == nil || assignments == nil {
		unavailable(w, r)
		return
	}
	resource[models.Effect, repository.EffectFilter]{
		kind:        "effect",
		prefix:      "/app/api/effects",
		service:     services.Effects,
		remove:      assignments.CascadeDeleteEffect,
		assignments: map[string]assignment.Kind{"molecules": assignment.EffectMolecules},
	}.serve(w, r)
}

// MoleculeResource handles /app/api/molecules.
func MoleculeResource(w http.ResponseWriter, r *http.Request) {
	if services.Molecules == nil || assignments == nil {
		unavailable(w, r)
		return
	}
	resource[models.Molecule, repository.MoleculeFilter]{
		kind:    "molecule",
		prefix:  "/app/api/molecules",
		service: services.Molecules,
		remove:  assignments.CascadeDeleteMolecule,
	}.serve(w, r)
}

// SubstanceResource handles /app/api/substances.
func SubstanceResource(w http.ResponseWriter, r *http.Request) {
	if services.Substances == nil {
		unavailable(w, r)
		return
	}
	resource[models.Substance, repository.NameFilter]{
		kind:    "substance",
		prefix:  "/app/api/substances",
		service: services.Substances,
		remove:  services.Substances.Delete,
	}.serve(w, r)
}

// CategoryResource handles /app/api/categories.
func CategoryResource(w http.ResponseWriter, r *http.Request) {
	if services.Categories == nil {
		unavailable(w, r)
		return
	}
	resource[models.Category, repository.NameFilter]{
		kind:    "category",
		prefix:  "/app/api/categories",
		service: services.Categories,
		remove:  services.Categories.Delete,
	}.serve(w, r)
}

func unavailable(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "catalog request without database", "path", r.URL.Path)
	writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
}

func (res resource[T, F]) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, res.prefix), "/")
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			res.list(w, r)
		case http.MethodPost:
			res.create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	segments := strings.Split(path, "/")
	id := segments[0]
	switch len(segments) {
	case 1:
		switch r.Method {
		case http.MethodGet:
			res.show(w, r, id)
		case http.MethodPut:
			res.update(w, r, id)
		case http.MethodDelete:
			res.delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case 2:
		kind, ok := res.assignments[segments[1]]
		if !ok {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			res.listAssignments(w, r, id, kind)
		case http.MethodPut:
			res.replaceAssignments(w, r, id, kind)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	default:
		http.NotFound(w, r)
	}
}

func (res resource[T, F]) list(w http.ResponseWriter, r *http.Request) {
	rows, err := res.service.List(r.Context())
	if err != nil {
		applog.Error(r.Context(), "failed to list records", "kind", res.kind, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load "+res.kind+" records")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (res resource[T, F]) show(w http.ResponseWriter, r *http.Request, id string) {
	row, err := res.service.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, res.kind, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (res resource[T, F]) create(w http.ResponseWriter, r *http.Request) {
	entity := new(T)
	if err := json.NewDecoder(r.Body).Decode(entity); err != nil {
		applog.Debug(r.Context(), "invalid create payload", "kind", res.kind, "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if (*entity).GetID() != "" {
		writeJSONError(w, http.StatusBadRequest, "id is assigned by the server")
		return
	}
	if result := res.service.Create(r.Context(), entity); result.HasErrors() {
		writeValidation(w, http.StatusUnprocessableEntity, result)
		return
	}
	applog.Info(r.Context(), "catalog record created", "kind", res.kind, "id", (*entity).GetID())
	writeJSON(w, http.StatusCreated, entity)
}

func (res resource[T, F]) update(w http.ResponseWriter, r *http.Request, id string) {
	existing, err := res.service.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, res.kind, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(existing); err != nil {
		applog.Debug(r.Context(), "invalid update payload", "kind", res.kind, "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if (*existing).GetID() != id {
		writeJSONError(w, http.StatusBadRequest, "id does not match the request path")
		return
	}
	if result := res.service.Update(r.Context(), existing); result.HasErrors() {
		writeValidation(w, http.StatusUnprocessableEntity, result)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (res resource[T, F]) delete(w http.ResponseWriter, r *http.Request, id string) {
	if _, found, err := res.service.Find(r.Context(), id); err != nil {
		writeLookupError(w, r, res.kind, err)
		return
	} else if !found {
		writeJSONError(w, http.StatusNotFound, res.kind+" not found")
		return
	}

	if result := res.remove(r.Context(), id); result.HasErrors() {
		applog.Error(r.Context(), "delete left errors", "kind", res.kind, "id", id, "errors", result)
		writeValidation(w, http.StatusInternalServerError, result)
		return
	}
	applog.Info(r.Context(), "catalog record deleted", "kind", res.kind, "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (res resource[T, F]) listAssignments(w http.ResponseWriter, r *http.Request, id string, kind assignment.Kind) {
	children, err := assignments.Assignments(r.Context(), kind, id)
	if err != nil {
		writeLookupError(w, r, res.kind, err)
		return
	}
	writeJSON(w, http.StatusOK, children)
}

func (res resource[T, F]) replaceAssignments(w http.ResponseWriter, r *http.Request, id string, kind assignment.Kind) {
	var children []assignment.Assignment
	if err := json.NewDecoder(r.Body).Decode(&children); err != nil {
		applog.Debug(r.Context(), "invalid assignments payload", "kind", kind, "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := assignments.ReplaceAssignments(r.Context(), kind, id, children)
	var violation *validation.InvariantViolation
	switch {
	case errors.As(err, &violation):
		applog.Debug(r.Context(), "assignments rejected", "kind", kind, "reason", violation.Reason)
		writeJSONError(w, http.StatusBadRequest, violation.Reason)
	case err != nil:
		writeLookupError(w, r, res.kind, err)
	case result.HasErrors():
		writeValidation(w, http.StatusUnprocessableEntity, result)
	default:
		applog.Info(r.Context(), "assignments replaced", "kind", kind, "parent", id, "children", len(children))
		w.WriteHeader(http.StatusNoContent)
	}
}
