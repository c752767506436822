package factory

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	plannermocks "github.com/vfg2006/production-dashboard-api/infrastructure/integrator/planner/mocks"
	"github.com/vfg2006/production-dashboard-api/infrastructure/integrator/planner/plannerclient"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/factory/mocks"
	"go.uber.org/mock/gomock"
)

func newTestEditor(t *testing.T) (*Service, *plannermocks.MockPlannerIntegrator, *mocks.MockRegenerator) {
	ctrl := gomock.NewController(t)
	plannerMock := plannermocks.NewMockPlannerIntegrator(ctrl)
	regenerator := mocks.NewMockRegenerator(ctrl)

	return NewService(plannerMock, regenerator).(*Service), plannerMock, regenerator
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Usa a configuração do planejamento", func(t *testing.T) {
		editor, plannerMock, _ := newTestEditor(t)
		remote := domain.DefaultFactoryConfig()
		remote.FactoryName = "Fresno Plant"
		plannerMock.EXPECT().GetFactoryInfo(gomock.Any()).Return(&remote, nil)

		editor.Seed(ctx)

		assert.Equal(t, "Fresno Plant", editor.Config().FactoryName)
	})

	t.Run("Mantém a configuração padrão em falha", func(t *testing.T) {
		editor, plannerMock, _ := newTestEditor(t)
		plannerMock.EXPECT().GetFactoryInfo(gomock.Any()).Return(nil, plannerclient.ErrTransport)

		editor.Seed(ctx)

		assert.Equal(t, domain.DefaultFactoryConfig(), editor.Config())
	})
}

func TestUpdateField(t *testing.T) {
	tests := []struct {
		name          string
		field         string
		raw           string
		check         func(t *testing.T, cfg domain.FactoryConfig)
		expectedError error
	}{
		{
			name:  "Capacidade diária",
			field: FieldMaxDailyCapacity,
			raw:   "25000",
			check: func(t *testing.T, cfg domain.FactoryConfig) { assert.Equal(t, 25000, cfg.MaxDailyCapacity) },
		},
		{
			name:  "Eficiência com espaços",
			field: FieldMachineEfficiency,
			raw:   " 85 ",
			check: func(t *testing.T, cfg domain.FactoryConfig) { assert.Equal(t, 85, cfg.MachineEfficiency) },
		},
		{
			name:  "Turnos por dia",
			field: FieldAvailableShiftsPerDay,
			raw:   "3",
			check: func(t *testing.T, cfg domain.FactoryConfig) { assert.Equal(t, 3, cfg.AvailableShiftsPerDay) },
		},
		{
			name:  "Horas por turno",
			field: FieldHoursPerShift,
			raw:   "10",
			check: func(t *testing.T, cfg domain.FactoryConfig) { assert.Equal(t, 10, cfg.HoursPerShift) },
		},
		{
			name:  "Nome da fábrica sem conversão",
			field: FieldFactoryName,
			raw:   "  Plant 7 ",
			check: func(t *testing.T, cfg domain.FactoryConfig) { assert.Equal(t, "  Plant 7 ", cfg.FactoryName) },
		},
		{
			name:          "Campo desconhecido",
			field:         "factory_id",
			raw:           "7",
			expectedError: ErrUnknownField,
		},
		{
			name:          "Número inválido",
			field:         FieldHoursPerShift,
			raw:           "eight",
			expectedError: ErrInvalidNumber,
		},
		{
			name:          "Valor vazio",
			field:         FieldMaxDailyCapacity,
			raw:           "",
			expectedError: ErrInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor, _, _ := newTestEditor(t)

			cfg, err := editor.UpdateField(tt.field, tt.raw)

			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError))
				assert.Equal(t, domain.DefaultFactoryConfig(), editor.Config())
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
			tt.check(t, editor.Config())
		})
	}
}

func TestDowntime(t *testing.T) {
	t.Run("Adiciona parada no fim da lista", func(t *testing.T) {
		editor, _, _ := newTestEditor(t)

		cfg, err := editor.AddDowntime("2025-08-01", "Inspection", "3")
		require.NoError(t, err)
		require.Len(t, cfg.DowntimeSchedule, 3)
		assert.Equal(t, domain.DowntimeWindow{Date: "2025-08-01", Reason: "Inspection", ExpectedDowntimeHours: 3}, cfg.DowntimeSchedule[2])
	})

	t.Run("Horas inválidas não alteram a lista", func(t *testing.T) {
		editor, _, _ := newTestEditor(t)

		_, err := editor.AddDowntime("2025-08-01", "Inspection", "x")
		assert.True(t, errors.Is(err, ErrInvalidNumber))
		assert.Len(t, editor.Config().DowntimeSchedule, 2)
	})

	t.Run("Remove pelo índice", func(t *testing.T) {
		editor, _, _ := newTestEditor(t)

		cfg, err := editor.RemoveDowntime(0)
		require.NoError(t, err)
		require.Len(t, cfg.DowntimeSchedule, 1)
		assert.Equal(t, "Line Cleaning", cfg.DowntimeSchedule[0].Reason)
	})

	t.Run("Índice fora do intervalo", func(t *testing.T) {
		editor, _, _ := newTestEditor(t)

		for _, index := range []int{-1, 2, 10} {
			_, err := editor.RemoveDowntime(index)
			assert.True(t, errors.Is(err, ErrDowntimeIndex))
		}
		assert.Len(t, editor.Config().DowntimeSchedule, 2)
	})

	t.Run("Config devolve cópia", func(t *testing.T) {
		editor, _, _ := newTestEditor(t)

		cfg := editor.Config()
		cfg.DowntimeSchedule[0].Reason = "changed"

		assert.Equal(t, "Maintenance", editor.Config().DowntimeSchedule[0].Reason)
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Envia os cinco parâmetros da configuração", func(t *testing.T) {
		editor, _, regenerator := newTestEditor(t)
		_, err := editor.RemoveDowntime(1)
		require.NoError(t, err)
		_, err = editor.RemoveDowntime(0)
		require.NoError(t, err)

		expected := &domain.RegenerationParams{
			MaxDailyCapacity:      20000,
			MachineEfficiency:     90,
			AvailableShiftsPerDay: 2,
			HoursPerShift:         8,
			DowntimeSchedule:      "[]",
		}
		entries := []domain.ScheduleEntry{{Date: "2025-06-01", ProductID: 1, ProductName: "Canned Peaches", ScheduledUnits: 10}}
		regenerator.EXPECT().Regenerate(gomock.Any(), expected).Return(entries, nil)

		result, err := editor.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, entries, result)
	})

	t.Run("Falha traz a mensagem de alerta e mantém as edições", func(t *testing.T) {
		editor, _, regenerator := newTestEditor(t)
		_, err := editor.UpdateField(FieldHoursPerShift, "12")
		require.NoError(t, err)
		regenerator.EXPECT().Regenerate(gomock.Any(), gomock.Any()).Return(nil, errors.New("upstream 500"))

		result, err := editor.Submit(ctx)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, ErrSubmitFailed))
		assert.Contains(t, err.Error(), UpdateFailedAlert)
		assert.Equal(t, 12, editor.Config().HoursPerShift)
	})
}
