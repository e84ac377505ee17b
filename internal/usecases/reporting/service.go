package reporting

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Reporter interface {
	GetDashboard(ctx context.Context, request DashboardRequest) (*Dashboard, error)
	GetForecast(ctx context.Context) (*domain.Forecast, error)
	ExportCSV(ctx context.Context, w io.Writer, filters domain.EntryFilters) error
}

type Service struct {
	entryRepository repository.EntryRepository
	costRepository  repository.ProductCostRepository
	loc             *time.Location
	now             func() time.Time
}

func NewService(
	entryRepository repository.EntryRepository,
	costRepository repository.ProductCostRepository,
	loc *time.Location,
) *Service {
	return &Service{
		entryRepository: entryRepository,
		costRepository:  costRepository,
		loc:             loc,
		now:             time.Now,
	}
}

// WithClock substitui o relógio usado para resolver "hoje"
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) today() time.Time {
	return utils.InLocation(s.now(), s.loc)
}

type dashboardData struct {
	current  []*domain.Entry
	previous []*domain.Entry
	history  []*domain.Entry
	costs    domain.CostMap
}

// GetDashboard calcula métricas, gráficos, comparação e projeção em uma única resposta.
// As quatro consultas são independentes e rodam em paralelo.
func (s *Service) GetDashboard(ctx context.Context, request DashboardRequest) (*Dashboard, error) {
	now := s.today()

	applied, err := resolveFilters(request, now)
	if err != nil {
		return nil, err
	}

	current := domain.EntryFilters{
		DateFrom:  applied.DateFrom,
		DateTo:    applied.DateTo,
		ProductID: applied.ProductID,
	}
	previousPeriod := domain.PreviousPeriod(request.QuickFilter, applied.DateFrom, applied.DateTo, now)

	data, err := s.loadDashboardData(ctx, current, previousPeriod)
	if err != nil {
		return nil, err
	}

	metrics := domain.ComputeDashboardMetrics(data.current, data.costs)
	forecast := domain.ComputeForecast(data.history, data.costs, now)

	var comparison *domain.PeriodComparison
	changes := domain.MetricChanges{}
	if previousPeriod != nil {
		previousMetrics := domain.ComputeDashboardMetrics(data.previous, data.costs)
		changes = domain.CompareMetrics(metrics, previousMetrics)
		comparison = &domain.PeriodComparison{
			Period:  previousPeriod,
			Metrics: previousMetrics,
			Changes: changes,
		}
	}

	return &Dashboard{
		Filters:    applied,
		Metrics:    metrics,
		Charts:     domain.ComputeChartData(data.current, data.costs),
		Comparison: comparison,
		Forecast:   forecast,
		Display:    buildDisplay(metrics, changes, forecast),
	}, nil
}

func (s *Service) loadDashboardData(ctx context.Context, current domain.EntryFilters, previous *domain.Period) (dashboardData, error) {
	var data dashboardData

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.listEntries(ctx, current)
		if err != nil {
			return err
		}
		data.current = entries
		return nil
	})

	if previous != nil {
		g.Go(func() error {
			entries, err := s.listEntries(ctx, previous.Filters(current.ProductID))
			if err != nil {
				return err
			}
			data.previous = entries
			return nil
		})
	}

	g.Go(func() error {
		entries, err := s.listEntries(ctx, domain.EntryFilters{})
		if err != nil {
			return err
		}
		data.history = entries
		return nil
	})

	g.Go(func() error {
		costs, err := s.costMap(ctx)
		if err != nil {
			return err
		}
		data.costs = costs
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboardData{}, err
	}

	return data, nil
}

// GetForecast projeta o mês corrente a partir de todo o histórico
func (s *Service) GetForecast(ctx context.Context) (*domain.Forecast, error) {
	entries, err := s.listEntries(ctx, domain.EntryFilters{})
	if err != nil {
		return nil, err
	}

	costs, err := s.costMap(ctx)
	if err != nil {
		return nil, err
	}

	return domain.ComputeForecast(entries, costs, s.today()), nil
}

func (s *Service) listEntries(ctx context.Context, filters domain.EntryFilters) ([]*domain.Entry, error) {
	entries, err := s.entryRepository.List(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar registros do painel")
		return nil, errors.WithMessage(ErrLoadEntries, err.Error())
	}
	return entries, nil
}

func (s *Service) costMap(ctx context.Context) (domain.CostMap, error) {
	costs, err := s.costRepository.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar custos dos produtos")
		return nil, errors.WithMessage(ErrLoadCosts, err.Error())
	}
	return domain.BuildCostMap(costs), nil
}

// resolveFilters converte o atalho em datas e valida o intervalo
func resolveFilters(request DashboardRequest, now time.Time) (AppliedFilters, error) {
	from, to := request.DateFrom, request.DateTo
	if request.QuickFilter != domain.QuickFilterCustom {
		from, to = request.QuickFilter.Bounds(now)
	}

	from, to = emptyToNil(from), emptyToNil(to)

	if from != nil && !utils.IsValidDate(*from) {
		return AppliedFilters{}, errors.Wrapf(ErrInvalidPeriod, "data inicial %q", *from)
	}
	if to != nil && !utils.IsValidDate(*to) {
		return AppliedFilters{}, errors.Wrapf(ErrInvalidPeriod, "data final %q", *to)
	}
	if from != nil && to != nil && *from > *to {
		return AppliedFilters{}, errors.Wrapf(ErrInvalidPeriod, "data inicial %s posterior à data final %s", *from, *to)
	}

	productID := request.ProductID
	if productID == "" {
		productID = domain.AllProducts
	}

	return AppliedFilters{
		QuickFilter: request.QuickFilter.String(),
		DateFrom:    from,
		DateTo:      to,
		ProductID:   productID,
	}, nil
}

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
