package garden

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/ledger"
	"github.com/julianstephens/petgarden/internal/models"
	"github.com/julianstephens/petgarden/internal/storage"
)

type seqIDs struct{ n int }

func (s *seqIDs) EntityID() string {
	s.n++
	return fmt.Sprintf("id%d", s.n)
}

func (s *seqIDs) RecordID(time.Time) string {
	s.n++
	return fmt.Sprintf("rec%04d", s.n)
}

type codes []string

func (c codes) AllowList(context.Context) ([]string, error) { return c, nil }

func newStore(t *testing.T) *storage.JSONStore {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "garden.json"))
	require.NoError(t, store.Init())
	return store
}

func open(t *testing.T, store storage.Provider, opts ...Option) *Garden {
	t.Helper()
	g, err := Open(store, append([]Option{WithIDs(&seqIDs{})}, opts...)...)
	require.NoError(t, err)
	return g
}

// reopen loads the same file through a fresh store.
func reopen(t *testing.T, store *storage.JSONStore, opts ...Option) *Garden {
	t.Helper()
	fresh := storage.NewJSONStore(store.GetConfigPath())
	require.NoError(t, fresh.Load())
	return open(t, fresh, opts...)
}

// newActive returns an activated garden seeded with the default catalog.
func newActive(t *testing.T, opts ...Option) (*Garden, *storage.JSONStore) {
	t.Helper()
	store := newStore(t)
	g := open(t, store, opts...)
	require.NoError(t, g.Activate(context.Background(), "ok", codes{"OK"}))
	require.NoError(t, g.Reset(true))
	return g, store
}

func TestGateBlocksGameplay(t *testing.T) {
	g := open(t, newStore(t))
	assert.False(t, g.IsActivated())

	_, err := g.AddStudent("Ann")
	assert.ErrorIs(t, err, errs.ErrSystemNotActivated)
	_, err = g.Award("x", "r1")
	assert.ErrorIs(t, err, errs.ErrSystemNotActivated)
	_, err = g.Redeem("x", "s1")
	assert.ErrorIs(t, err, errs.ErrSystemNotActivated)
	_, err = g.Records(0)
	assert.ErrorIs(t, err, errs.ErrSystemNotActivated)
}

func TestActivateWrongCode(t *testing.T) {
	store := newStore(t)
	g := open(t, store)

	err := g.Activate(context.Background(), "nope", codes{"GARDEN"})
	assert.ErrorIs(t, err, errs.ErrInvalidActivation)
	assert.False(t, g.IsActivated())
}

func TestActivationPersists(t *testing.T) {
	store := newStore(t)
	g := open(t, store)
	require.NoError(t, g.Activate(context.Background(), " garden ", codes{"GARDEN"}))

	reopened := reopen(t, store)
	assert.True(t, reopened.IsActivated())
}

func TestResetSeedsDefaultsAndKeepsActivation(t *testing.T) {
	g, store := newActive(t)
	_, err := g.AddStudent("Ann")
	require.NoError(t, err)

	require.NoError(t, g.Reset(true))

	students, err := g.Students("")
	require.NoError(t, err)
	assert.Empty(t, students)
	rules, _ := g.Rules()
	items, _ := g.Items()
	assert.Len(t, rules, 7)
	assert.Len(t, items, 9)

	reopened := reopen(t, store)
	assert.True(t, reopened.IsActivated())

	require.NoError(t, g.Reset(false))
	rules, _ = g.Rules()
	assert.Empty(t, rules)
}

func TestAwardScenarioSurvivesReload(t *testing.T) {
	g, store := newActive(t)

	s, err := g.AddStudent("  Ann  ")
	require.NoError(t, err)
	assert.Equal(t, "Ann", s.Name)

	_, err = g.Adopt(ledger.AdoptRequest{StudentID: s.ID, Type: models.PetTypeCat, Name: "Mochi", BaseImage: "cat.svg"})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = g.Award(s.ID, "r3")
		require.NoError(t, err)
	}

	reopened := reopen(t, store)
	got, err := reopened.Student(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.FoodCount)
	assert.Equal(t, 4, got.Medals)
	assert.Equal(t, 24, got.Pet.XP)
	assert.Equal(t, 3, got.Pet.Level)

	recs, err := reopened.Records(0)
	require.NoError(t, err)
	// adopt + 4 point + 2 milestone (levels 2 and 3)
	assert.Len(t, recs, 7)
	assert.Equal(t, models.RecordMilestone, recs[0].Type)
	assert.Empty(t, reopened.Check())
}

func TestRedeemPersistsAllKeys(t *testing.T) {
	g, store := newActive(t)
	s, err := g.AddStudent("Ann")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = g.Award(s.ID, "r1")
		require.NoError(t, err)
	}

	rc, err := g.Redeem(s.ID, "s4")
	require.NoError(t, err)
	assert.Equal(t, 0, rc.Student.Medals)

	reopened := reopen(t, store)
	items, err := reopened.Items()
	require.NoError(t, err)
	for _, it := range items {
		if it.ID == "s4" {
			assert.Equal(t, 49, it.Stock)
		}
	}
	got, _ := reopened.Student(s.ID)
	assert.Equal(t, 0, got.Medals)
}

func TestValidation(t *testing.T) {
	g, _ := newActive(t)

	_, err := g.AddStudent("   ")
	assert.ErrorIs(t, err, errs.ErrEmptyName)

	s, err := g.AddStudent("Ann")
	require.NoError(t, err)
	_, err = g.RenameStudent(s.ID, "")
	assert.ErrorIs(t, err, errs.ErrEmptyName)
	_, err = g.Adopt(ledger.AdoptRequest{StudentID: s.ID, Type: models.PetTypeDog, Name: " "})
	assert.ErrorIs(t, err, errs.ErrEmptyName)

	_, err = g.AddItem(models.ShopItem{Name: "Tint", Type: models.ItemTypeColor, Value: "blue"})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	_, err = g.AddItem(models.ShopItem{Name: "Thing", Type: "weird"})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestAddRuleForcesSign(t *testing.T) {
	g, _ := newActive(t)

	neg, err := g.AddRule(RuleInput{Label: "Forgot homework", Value: 2, Negative: true})
	require.NoError(t, err)
	assert.Equal(t, -2, neg.Value)
	assert.Equal(t, models.RuleTypeNegative, neg.Type)
	assert.Equal(t, constants.DefaultNegativeRuleIcon, neg.Icon)

	pos, err := g.AddRule(RuleInput{Label: "Helped out", Value: -3})
	require.NoError(t, err)
	assert.Equal(t, 3, pos.Value)
	assert.Equal(t, constants.DefaultPositiveRuleIcon, pos.Icon)

	require.NoError(t, g.RemoveRule(pos.ID))
	assert.ErrorIs(t, g.RemoveRule(pos.ID), errs.ErrRuleNotFound)
}

func TestAddRuleRejectsOutOfRangeValue(t *testing.T) {
	g, _ := newActive(t)
	before, err := g.Rules()
	require.NoError(t, err)

	for _, v := range []int{math.MinInt, math.MaxInt, constants.MaxRuleValue + 1} {
		_, err := g.AddRule(RuleInput{Label: "Huge", Value: v})
		assert.ErrorIs(t, err, errs.ErrInvalidInput, "value %d", v)
	}
	_, err = g.AddItem(models.ShopItem{Name: "Gold", Type: models.ItemTypeConsumable, Price: math.MaxInt})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	after, err := g.Rules()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	item, err := g.SetStock("s5", math.MinInt)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)
	item, err = g.SetStock("s5", math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, constants.MaxItemStock, item.Stock)
}

func TestRemovedRuleKeepsRecordText(t *testing.T) {
	g, _ := newActive(t)
	s, _ := g.AddStudent("Ann")
	rule, err := g.AddRule(RuleInput{Label: "Tidy desk", Value: 1})
	require.NoError(t, err)
	_, err = g.Award(s.ID, rule.ID)
	require.NoError(t, err)

	require.NoError(t, g.RemoveRule(rule.ID))
	recs, _ := g.Records(1)
	assert.Equal(t, "Tidy desk", recs[0].Description)
}

func TestStockAdjustments(t *testing.T) {
	g, _ := newActive(t)

	item, err := g.Restock("s5", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Stock)

	item, err = g.SetStock("s5", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)

	item, err = g.Restock("s5", -4)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)

	_, err = g.SetStock("nope", 1)
	assert.ErrorIs(t, err, errs.ErrItemNotFound)
}

func TestAddAndRemoveItem(t *testing.T) {
	g, _ := newActive(t)

	item, err := g.AddItem(models.ShopItem{Name: "Crown", Type: models.ItemTypeAccessory, Value: "Crown", Price: 30, Stock: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, constants.DefaultShopItemIcon, item.Icon)

	require.NoError(t, g.RemoveItem(item.ID))
	assert.ErrorIs(t, g.RemoveItem(item.ID), errs.ErrItemNotFound)
}

func TestClearRecordsLeavesEverythingElse(t *testing.T) {
	g, _ := newActive(t)
	s, _ := g.AddStudent("Ann")
	_, err := g.Award(s.ID, "r2")
	require.NoError(t, err)

	students, _ := g.Students("")
	rules, _ := g.Rules()
	items, _ := g.Items()

	n, err := g.ClearRecords()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	recs, _ := g.Records(0)
	assert.Empty(t, recs)
	after, _ := g.Students("")
	afterRules, _ := g.Rules()
	afterItems, _ := g.Items()
	assert.Equal(t, students, after)
	assert.Equal(t, rules, afterRules)
	assert.Equal(t, items, afterItems)
}

func TestExportRecords(t *testing.T) {
	g, _ := newActive(t)

	var buf bytes.Buffer
	_, err := g.ExportRecords(&buf)
	assert.ErrorIs(t, err, errs.ErrNothingToExport)
	assert.Zero(t, buf.Len())

	s, _ := g.AddStudent("Ann")
	_, err = g.Award(s.ID, "r1")
	require.NoError(t, err)

	n, err := g.ExportRecords(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), "Morning reading check-in")
}

func TestCatalogImportExport(t *testing.T) {
	g, _ := newActive(t)

	var buf bytes.Buffer
	require.NoError(t, g.ExportCatalog(&buf))
	assert.Contains(t, buf.String(), "rules:")

	f, err := g.ImportCatalog(strings.NewReader("items:\n  - id: only\n    name: Badge\n    type: consumable\n    price: 1\n    stock: 3\n"))
	require.NoError(t, err)
	assert.Len(t, f.Items, 1)

	items, _ := g.Items()
	rules, _ := g.Rules()
	assert.Len(t, items, 1)
	assert.Len(t, rules, 7)

	_, err = g.ImportCatalog(strings.NewReader("nonsense: [\n"))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestUpdateSettings(t *testing.T) {
	g, store := newActive(t)
	name, sound := "Sunflower Room", false
	empty := "  "

	got, err := g.UpdateSettings(SettingsUpdate{ClassName: &name, SoundEnabled: &sound, SystemName: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Sunflower Room", got.ClassName)
	assert.Equal(t, constants.DefaultSystemName, got.SystemName)
	assert.False(t, got.SoundEnabled)

	reopened := reopen(t, store)
	assert.Equal(t, got, reopened.Settings())
}

func TestHonorRoll(t *testing.T) {
	g, _ := newActive(t)
	a, _ := g.AddStudent("Ann")
	b, _ := g.AddStudent("Bo")
	_, err := g.Award(b.ID, "r1")
	require.NoError(t, err)

	roll, err := g.HonorRoll()
	require.NoError(t, err)
	require.Len(t, roll, 2)
	assert.Equal(t, b.ID, roll[0].Student.ID)
	assert.Equal(t, a.ID, roll[1].Student.ID)
}

func TestRecordLimitAndCheck(t *testing.T) {
	g, store := newActive(t, WithRecordLimit(3))
	s, _ := g.AddStudent("Ann")
	for i := 0; i < 5; i++ {
		_, err := g.Award(s.ID, "r1")
		require.NoError(t, err)
	}
	recs, _ := g.Records(0)
	assert.Len(t, recs, 3)

	reopened := reopen(t, store, WithRecordLimit(2))
	problems := reopened.Check()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "over the cap")
}

func TestCheckFindsBrokenPet(t *testing.T) {
	store := newStore(t)
	raw := `{"schema_version":1,"data":[{"id":"s1","name":"Ann","food_count":0,"medals":0,
		"pet":{"id":"p1","name":"Mochi","type":"Cat","level":9,"xp":3,"base_image":"","image":"","stage":"Adult","abilities":[]}}]}`
	require.NoError(t, store.Put(constants.KeyStudents, []byte(raw)))

	g := open(t, store)
	problems := g.Check()
	assert.Len(t, problems, 3, "level, stage and missing ability a1")
}
