package services_test

import (
	"sync"
	"testing"
	"time"

	"preparedelivery/internal/core/domain/model/eligibility"
	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/core/domain/model/order"
	"preparedelivery/internal/core/domain/model/vehicle"
	"preparedelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	tomorrow  = now.AddDate(0, 0, 1)
	yesterday = now.AddDate(0, 0, -1)
)

func validAddress() kernel.Address {
	return kernel.NewAddress("Ростов-на-Дону", "ул. Маршала Конюхова", "д. 5")
}

func assertAssigned(t *testing.T, result eligibility.Result, wantVehicle string, wantKg float64) {
	t.Helper()
	a, ok := result.Assignment()
	require.True(t, ok, "expected assignment, got %s", result)
	assert.Equal(t, wantVehicle, a.Vehicle().Name())
	assert.InDelta(t, wantKg, a.Weight().Kilograms(), 0)
}

func assertRejected(t *testing.T, result eligibility.Result, want eligibility.Reason) {
	t.Helper()
	reason, ok := result.Reason()
	require.True(t, ok, "expected rejection, got %s", result)
	assert.Equal(t, want, reason)
}

func TestDeliveryEligibilityEvaluator_Scenarios(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()
	catalog := vehicle.DefaultCatalog()

	t.Run("light order goes by gazel", func(t *testing.T) {
		result := evaluator.Evaluate("id", kernel.MustWeight(60), validAddress(), tomorrow, now, catalog)

		assertAssigned(t, result, vehicle.Gazel, 60)
		a, _ := result.Assignment()
		assert.Equal(t, "id", a.OrderID())
		assert.True(t, a.Address().IsEqual(validAddress()))
	})

	t.Run("order at gazel capacity goes by kamaz", func(t *testing.T) {
		result := evaluator.Evaluate("id", kernel.MustWeight(1000), validAddress(), tomorrow, now, catalog)

		assertAssigned(t, result, vehicle.Kamaz, 1000)
	})

	t.Run("order at kamaz capacity has no vehicle", func(t *testing.T) {
		result := evaluator.Evaluate("id", kernel.MustWeight(3000), validAddress(), tomorrow, now, catalog)

		assertRejected(t, result, eligibility.NoVehicleAvailable)
	})

	t.Run("date in the past is rejected first", func(t *testing.T) {
		result := evaluator.Evaluate("id", kernel.MustWeight(60), validAddress(), yesterday, now, catalog)

		assertRejected(t, result, eligibility.DateInPast)
	})

	t.Run("missing city is rejected", func(t *testing.T) {
		address := kernel.NewAddress("", "ул. X", "5")

		result := evaluator.Evaluate("id", kernel.MustWeight(60), address, tomorrow, now, catalog)

		assertRejected(t, result, eligibility.IncompleteAddress)
	})
}

func TestDeliveryEligibilityEvaluator_DateMustBeStrictlyInFuture(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()
	catalog := vehicle.DefaultCatalog()

	tests := []struct {
		name    string
		date    time.Time
		address kernel.Address
		kg      float64
	}{
		{name: "exactly now", date: now, address: validAddress(), kg: 60},
		{name: "one nanosecond ago", date: now.Add(-time.Nanosecond), address: validAddress(), kg: 60},
		{name: "past date with incomplete address", date: yesterday, address: kernel.Address{}, kg: 60},
		{name: "past date with overweight order", date: yesterday, address: validAddress(), kg: 5000},
		{name: "zero time", date: time.Time{}, address: validAddress(), kg: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evaluator.Evaluate("id", kernel.MustWeight(tt.kg), tt.address, tt.date, now, catalog)

			assertRejected(t, result, eligibility.DateInPast)
		})
	}

	t.Run("one nanosecond ahead is accepted", func(t *testing.T) {
		result := evaluator.Evaluate("id", kernel.MustWeight(60), validAddress(), now.Add(time.Nanosecond), now, catalog)

		assertAssigned(t, result, vehicle.Gazel, 60)
	})

	t.Run("same instant in another time zone is still not in the future", func(t *testing.T) {
		moscow := time.FixedZone("MSK", 3*60*60)

		result := evaluator.Evaluate("id", kernel.MustWeight(60), validAddress(), now.In(moscow), now, catalog)

		assertRejected(t, result, eligibility.DateInPast)
	})
}

func TestDeliveryEligibilityEvaluator_AddressMustBeComplete(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()
	catalog := vehicle.DefaultCatalog()

	addresses := map[string]kernel.Address{
		"empty city":         kernel.NewAddress("", "Main", "5"),
		"empty street":       kernel.NewAddress("Rostov", "", "5"),
		"empty house":        kernel.NewAddress("Rostov", "Main", ""),
		"blank city":         kernel.NewAddress("   ", "Main", "5"),
		"tab-only street":    kernel.NewAddress("Rostov", "\t", "5"),
		"newline-only house": kernel.NewAddress("Rostov", "Main", "\n"),
		"zero address":       {},
	}

	for name, address := range addresses {
		t.Run(name, func(t *testing.T) {
			result := evaluator.Evaluate("id", kernel.MustWeight(60), address, tomorrow, now, catalog)

			assertRejected(t, result, eligibility.IncompleteAddress)
		})
	}

	t.Run("address check runs before vehicle selection", func(t *testing.T) {
		result := evaluator.Evaluate("id", kernel.MustWeight(9000), kernel.Address{}, tomorrow, now, catalog)

		assertRejected(t, result, eligibility.IncompleteAddress)
	})
}

func TestDeliveryEligibilityEvaluator_SelectsSmallestFittingVehicle(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()

	bike, err := vehicle.NewClass("bike", kernel.MustWeight(25))
	require.NoError(t, err)
	gazel, err := vehicle.NewClass(vehicle.Gazel, kernel.MustWeight(1000))
	require.NoError(t, err)
	kamaz, err := vehicle.NewClass(vehicle.Kamaz, kernel.MustWeight(3000))
	require.NoError(t, err)
	catalog, err := vehicle.NewCatalog(bike, gazel, kamaz)
	require.NoError(t, err)

	for kg := 0.0; kg < 3500; kg += 12.5 {
		result := evaluator.Evaluate("id", kernel.MustWeight(kg), validAddress(), tomorrow, now, catalog)

		var want string
		for _, c := range catalog.Classes() {
			if c.Capacity().Kilograms() > kg {
				want = c.Name()
				break
			}
		}

		if want == "" {
			assertRejected(t, result, eligibility.NoVehicleAvailable)
			assert.GreaterOrEqual(t, kg, 3000.0)
			continue
		}
		assertAssigned(t, result, want, kg)
	}
}

func TestDeliveryEligibilityEvaluator_EmptyCatalog(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()

	result := evaluator.Evaluate("id", kernel.Weight{}, validAddress(), tomorrow, now, vehicle.Catalog{})

	assertRejected(t, result, eligibility.NoVehicleAvailable)
}

func TestDeliveryEligibilityEvaluator_IsIdempotent(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()
	catalog := vehicle.DefaultCatalog()

	inputs := []kernel.Weight{kernel.MustWeight(60), kernel.MustWeight(1000), kernel.MustWeight(3000)}
	for _, w := range inputs {
		first := evaluator.Evaluate("id", w, validAddress(), tomorrow, now, catalog)
		second := evaluator.Evaluate("id", w, validAddress(), tomorrow, now, catalog)

		assert.Equal(t, first, second)
	}
}

func TestDeliveryEligibilityEvaluator_DoesNotMutateInputs(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()
	catalog := vehicle.DefaultCatalog()
	before := catalog.Classes()
	address := validAddress()

	_ = evaluator.Evaluate("id", kernel.MustWeight(60), address, tomorrow, now, catalog)

	assert.Equal(t, before, catalog.Classes())
	assert.True(t, address.IsEqual(validAddress()))
}

func TestDeliveryEligibilityEvaluator_ConcurrentUse(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()
	catalog := vehicle.DefaultCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			kg := float64(i * 50)
			result := evaluator.Evaluate("id", kernel.MustWeight(kg), validAddress(), tomorrow, now, catalog)
			assert.Equal(t, kg < 3000, result.IsAssigned(), "weight %v", kg)
		}()
	}
	wg.Wait()
}

func TestDeliveryEligibilityEvaluator_EvaluateOrder(t *testing.T) {
	evaluator := services.NewDeliveryEligibilityEvaluator()

	t.Run("reads id and weight from the order", func(t *testing.T) {
		first, _ := order.NewProduct("first", kernel.MustWeight(20))
		second, _ := order.NewProduct("second", kernel.MustWeight(40))
		o, err := order.NewOrderFromProducts("id", []order.Product{first, second})
		require.NoError(t, err)

		result, err := evaluator.EvaluateOrder(o, validAddress(), tomorrow, now, vehicle.DefaultCatalog())

		require.NoError(t, err)
		assertAssigned(t, result, vehicle.Gazel, 60)
		a, _ := result.Assignment()
		assert.Equal(t, "id", a.OrderID())
	})

	t.Run("rejects orders that were not constructed", func(t *testing.T) {
		_, err := evaluator.EvaluateOrder(&order.Order{}, validAddress(), tomorrow, now, vehicle.DefaultCatalog())

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
