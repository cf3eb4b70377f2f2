package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gorm.io/gorm"

	"oleum/internal/assignment"
	"oleum/internal/catalog"
	applog "oleum/internal/log"
	"oleum/internal/repository"
	"oleum/internal/validation"
	"oleum/models"
)

// Kind selects which junction an assignment sheet fills.
type Kind string

const (
	OilEffects      Kind = "oil-effects"
	EffectMolecules Kind = "effect-molecules"
	OilMolecules    Kind = "oil-molecules"
)

// Kinds lists the supported sheet kinds.
var Kinds = []Kind{OilEffects, EffectMolecules, OilMolecules}

var (
	errDryRun   = errors.New("dry run")
	errRejected = errors.New("import rejected")
)

// ParseKind resolves a --kind flag value.
func ParseKind(value string) (Kind, error) {
	for _, kind := range Kinds {
		if strings.EqualFold(strings.TrimSpace(value), string(kind)) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown import kind %q", value)
}

// Report summarises one import.
type Report struct {
	Kind            Kind
	Rows            int
	Parents         int
	ParentsCreated  int
	ChildrenCreated int
	Assignments     int
	DryRun          bool
	Errors          validation.Result
}

// Importer writes assignment sheets into the catalog. Every import runs in one
// transaction: rejected rows or a dry run leave the database untouched.
type Importer struct {
	db  *gorm.DB
	log *slog.Logger
}

// New builds an Importer over db.
func New(db *gorm.DB, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = applog.Logger()
	}
	return &Importer{db: db, log: logger.With("component", "importer")}
}

// ImportFile reads path and imports its rows.
func (im *Importer) ImportFile(ctx context.Context, kind Kind, path string, dryRun bool) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{Kind: kind, DryRun: dryRun}, fmt.Errorf("read %s: %w", path, err)
	}
	rows, err := Read(path, data)
	if err != nil {
		return Report{Kind: kind, DryRun: dryRun}, err
	}
	return im.Import(ctx, kind, rows, dryRun)
}

// Import creates missing parents and children by name, then replaces the
// assignments of every parent named in rows. Parents not named keep their
// assignments. A non-empty Report.Errors means nothing was written.
func (im *Importer) Import(ctx context.Context, kind Kind, rows []Row, dryRun bool) (Report, error) {
	report := Report{Kind: kind, Rows: len(rows), DryRun: dryRun, Errors: validation.New()}
	if im.db == nil {
		return report, fmt.Errorf("database handle is nil")
	}
	groups := groupByParent(rows)
	report.Parents = len(groups)

	err := im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)
		run := importRun{
			services: catalog.NewServices(repos, im.log),
			manager:  assignment.NewManager(repos, im.log),
			report:   &report,
		}
		for _, group := range groups {
			if err := run.apply(ctx, kind, group); err != nil {
				return err
			}
		}
		if report.Errors.HasErrors() {
			return errRejected
		}
		if dryRun {
			return errDryRun
		}
		return nil
	})

	switch {
	case errors.Is(err, errDryRun):
		im.log.InfoContext(ctx, "dry run finished", "kind", kind, "rows", report.Rows, "assignments", report.Assignments)
		return report, nil
	case errors.Is(err, errRejected):
		im.log.WarnContext(ctx, "import rejected", "kind", kind, "errors", len(report.Errors))
		return report, nil
	case err != nil:
		return report, fmt.Errorf("import %s: %w", kind, err)
	}
	im.log.InfoContext(ctx, "import finished",
		"kind", kind,
		"rows", report.Rows,
		"parents", report.Parents,
		"created", report.ParentsCreated+report.ChildrenCreated,
		"assignments", report.Assignments,
	)
	return report, nil
}

type parentGroup struct {
	name     string
	children []Row
}

// groupByParent keeps the order parents first appear in. A child listed twice
// for the same parent keeps its first position and its last strength.
func groupByParent(rows []Row) []parentGroup {
	var groups []parentGroup
	index := make(map[string]int)
	for _, row := range rows {
		gi, ok := index[row.Parent]
		if !ok {
			gi = len(groups)
			index[row.Parent] = gi
			groups = append(groups, parentGroup{name: row.Parent})
		}
		group := &groups[gi]
		replaced := false
		for i := range group.children {
			if group.children[i].Child == row.Child {
				group.children[i].Strength = row.Strength
				replaced = true
				break
			}
		}
		if !replaced {
			group.children = append(group.children, row)
		}
	}
	return groups
}

type importRun struct {
	services catalog.Services
	manager  *assignment.Manager
	report   *Report
}

func (run importRun) apply(ctx context.Context, kind Kind, group parentGroup) error {
	var (
		parentID string
		target   assignment.Kind
		child    func(ctx context.Context, name string) (string, bool, validation.Result, error)
	)
	parentKey := group.name

	switch kind {
	case OilEffects, OilMolecules:
		id, created, result, err := ensure(ctx, run.services.EssentialOils, group.name, func(name string) *models.EssentialOil {
			return &models.EssentialOil{Name: name}
		})
		if err != nil {
			return err
		}
		run.record(parentKey, created, false, result)
		parentID = id
		if kind == OilEffects {
			target = assignment.EssentialOilEffects
			child = func(ctx context.Context, name string) (string, bool, validation.Result, error) {
				return ensure(ctx, run.services.Effects, name, func(name string) *models.Effect {
					return &models.Effect{Name: name}
				})
			}
		} else {
			target = assignment.EssentialOilMolecules
			child = run.molecule
		}
	case EffectMolecules:
		id, created, result, err := ensure(ctx, run.services.Effects, group.name, func(name string) *models.Effect {
			return &models.Effect{Name: name}
		})
		if err != nil {
			return err
		}
		run.record(parentKey, created, false, result)
		parentID = id
		target = assignment.EffectMolecules
		child = run.molecule
	default:
		return fmt.Errorf("unknown import kind %q", kind)
	}
	if parentID == "" {
		return nil
	}

	children := make([]assignment.Assignment, 0, len(group.children))
	for _, row := range group.children {
		id, created, result, err := child(ctx, row.Child)
		if err != nil {
			return err
		}
		run.record(fmt.Sprintf("line %d", row.Line), created, true, result)
		if id == "" {
			continue
		}
		children = append(children, assignment.Assignment{ChildID: id, Strength: row.Strength})
		if row.Strength > 0 {
			run.report.Assignments++
		}
	}
	if run.report.Errors.HasErrors() {
		return nil
	}

	result, err := run.manager.ReplaceAssignments(ctx, target, parentID, children)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		// Replace reports children by index; translate back to sheet lines.
		for _, key := range result.Keys() {
			message := result[key]
			var i int
			if _, scanErr := fmt.Sscanf(key, "children[%d]", &i); scanErr == nil && i < len(group.children) {
				key = fmt.Sprintf("line %d", group.children[i].Line)
			} else {
				key = parentKey + "." + key
			}
			run.report.Errors.Add(key, message)
		}
	}
	return nil
}

func (run importRun) molecule(ctx context.Context, name string) (string, bool, validation.Result, error) {
	return ensure(ctx, run.services.Molecules, name, func(name string) *models.Molecule {
		return &models.Molecule{Name: name}
	})
}

func (run importRun) record(key string, created, isChild bool, result validation.Result) {
	if result.HasErrors() {
		run.report.Errors.Merge(key, result)
		return
	}
	if !created {
		return
	}
	if isChild {
		run.report.ChildrenCreated++
	} else {
		run.report.ParentsCreated++
	}
}

// ensure returns the id of the row named name, creating it when missing.
func ensure[T catalog.Named, F any](ctx context.Context, service *catalog.Service[T, F], name string, build func(string) *T) (string, bool, validation.Result, error) {
	existing, found, err := service.FindByName(ctx, name)
	if err != nil {
		return "", false, nil, err
	}
	if found {
		return (*existing).GetID(), false, nil, nil
	}
	entity := build(name)
	if result := service.Create(ctx, entity); result.HasErrors() {
		return "", false, result, nil
	}
	return (*entity).GetID(), true, nil, nil
}
