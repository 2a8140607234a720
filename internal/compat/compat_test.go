package compat

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

func part(t models.ComponentType, name string, tags []string, specs models.Specs) *models.Component {
	return &models.Component{
		ID:            gofakeit.Int64(),
		Name:          name,
		Type:          t,
		Price:         gofakeit.Price(1000, 20000),
		Compatibility: tags,
		Specs:         specs,
	}
}

func findCheck(checks []models.Finding, name string) (models.Finding, bool) {
	for _, c := range checks {
		if c.Name == name {
			return c, true
		}
	}
	return models.Finding{}, false
}

func TestArePartsCompatible(t *testing.T) {
	t.Parallel()

	am4 := part(models.TypeCPU, "Ryzen 5 5600", []string{"AM4"}, nil)
	am4Board := part(models.TypeMotherboard, "ASUS B550M-A", []string{"AM4", "DDR4"}, nil)
	lga := part(models.TypeMotherboard, "Gigabyte B660M DS3H", []string{"LGA1700"}, nil)
	untagged := part(models.TypeMotherboard, "Mystery Board", nil, nil)

	tests := []struct {
		name string
		a, b *models.Component
		want bool
	}{
		{name: "shared socket", a: am4, b: am4Board, want: true},
		{name: "different socket", a: am4, b: lga, want: false},
		{name: "nil first", a: nil, b: am4Board, want: false},
		{name: "nil second", a: am4, b: nil, want: false},
		{name: "both nil", a: nil, b: nil, want: false},
		{name: "empty tag set", a: am4, b: untagged, want: false},
		{name: "empty tag set with itself", a: untagged, b: untagged, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ArePartsCompatible(tt.a, tt.b))
			assert.Equal(t, ArePartsCompatible(tt.a, tt.b), ArePartsCompatible(tt.b, tt.a), "must be symmetric")
		})
	}
}

func TestCPUMotherboardRule(t *testing.T) {
	t.Parallel()

	cpu := part(models.TypeCPU, "AMD Ryzen 5 5600", []string{"AM4"}, nil)

	t.Run("matching sockets pass", func(t *testing.T) {
		t.Parallel()

		mobo := part(models.TypeMotherboard, "ASUS B550M-A", []string{"AM4"}, nil)
		checks := GetCompatibilityChecks(models.SelectionOf(cpu, mobo))

		got, ok := findCheck(checks, RuleCPUMotherboard)
		require.True(t, ok)
		assert.True(t, got.Status)
		assert.Equal(t, "AMD Ryzen 5 5600 is compatible with ASUS B550M-A", got.Message)
	})

	t.Run("different sockets fail and name both tag lists", func(t *testing.T) {
		t.Parallel()

		mobo := part(models.TypeMotherboard, "Gigabyte B660M DS3H", []string{"LGA1700", "DDR4"}, nil)
		checks := GetCompatibilityChecks(models.SelectionOf(cpu, mobo))

		got, ok := findCheck(checks, RuleCPUMotherboard)
		require.True(t, ok)
		assert.False(t, got.Status)
		assert.Equal(t,
			"AMD Ryzen 5 5600 (AM4) is not compatible with Gigabyte B660M DS3H (LGA1700/DDR4)",
			got.Message)
	})
}

func TestPowerRequirementsRule(t *testing.T) {
	t.Parallel()

	cpu := part(models.TypeCPU, "Ryzen 5 5600", []string{"AM4"}, models.Specs{"tdp": models.Number(65)})
	gpu := part(models.TypeGPU, "GTX 1660 Super", []string{"PCIe"}, models.Specs{"tdp": models.Number(125)})

	tests := []struct {
		name     string
		wattage  models.SpecValue
		status   bool
		contains []string
	}{
		{
			name:     "450W covers 288W",
			wattage:  models.Text("450W"),
			status:   true,
			contains: []string{"(450W) is sufficient", "(288W estimated)"},
		},
		{
			name:     "200W is short of 288W",
			wattage:  models.Text("200W"),
			status:   false,
			contains: []string{"(200W) may not be sufficient", "(288W estimated)"},
		},
		{
			name:     "plain number wattage",
			wattage:  models.Number(650),
			status:   true,
			contains: []string{"(650W)"},
		},
		{
			name:     "unreadable wattage is never sufficient",
			wattage:  models.Text("unknown"),
			status:   false,
			contains: []string{"(0W)", "(0W estimated)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			psu := part(models.TypePSU, "Seasonic Focus", nil, models.Specs{"wattage": tt.wattage})
			checks := GetCompatibilityChecks(models.SelectionOf(cpu, gpu, psu))

			got, ok := findCheck(checks, RulePower)
			require.True(t, ok)
			assert.Equal(t, tt.status, got.Status)
			for _, s := range tt.contains {
				assert.Contains(t, got.Message, s)
			}
		})
	}

	t.Run("psu alone is skipped", func(t *testing.T) {
		t.Parallel()

		psu := part(models.TypePSU, "Lonely PSU", nil, models.Specs{"wattage": models.Text("550W")})
		_, ok := findCheck(GetCompatibilityChecks(models.SelectionOf(psu)), RulePower)
		assert.False(t, ok)
	})
}

func TestCoolerAndMemoryRules(t *testing.T) {
	t.Parallel()

	cpu := part(models.TypeCPU, "Core i5-12400F", []string{"LGA1700"}, nil)
	mobo := part(models.TypeMotherboard, "B660M", []string{"LGA1700"}, nil)
	ram := part(models.TypeMemory, "Kingston FURY 16GB", []string{"DDR5"}, nil)
	cooler := part(models.TypeCPUCooler, "Wraith Stealth", []string{"AM4"}, nil)

	checks := GetCompatibilityChecks(models.SelectionOf(cpu, mobo, ram, cooler))

	mem, ok := findCheck(checks, RuleMemoryMotherboard)
	require.True(t, ok)
	assert.True(t, mem.Status, "memory check is a placeholder and always passes")

	cool, ok := findCheck(checks, RuleCoolerCPU)
	require.True(t, ok)
	assert.False(t, cool.Status)
	assert.Equal(t, "Wraith Stealth may not be compatible with Core i5-12400F", cool.Message)
}

func TestGPUCaseRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		length    models.SpecValue
		maxLength models.SpecValue
		emitted   bool
		status    bool
		message   string
	}{
		{
			name:      "fits",
			length:    models.Text("232mm"),
			maxLength: models.Number(330),
			emitted:   true,
			status:    true,
			message:   "RTX 4060 fits in the NR200 case",
		},
		{
			name:      "equal length fits",
			length:    models.Number(330),
			maxLength: models.Text("330 mm"),
			emitted:   true,
			status:    true,
		},
		{
			name:      "too long keeps raw values",
			length:    models.Text("336mm"),
			maxLength: models.Text("330mm"),
			emitted:   true,
			status:    false,
			message:   "RTX 4060 (336mm) may be too long for NR200 case (max 330mm)",
		},
		{
			name:      "missing case limit skips the rule",
			length:    models.Number(300),
			maxLength: models.SpecValue{},
			emitted:   false,
		},
		{
			name:      "unparseable length skips the rule",
			length:    models.Text("long"),
			maxLength: models.Number(300),
			emitted:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gpu := part(models.TypeGPU, "RTX 4060", nil, models.Specs{"length": tt.length})
			pcCase := part(models.TypeCase, "NR200", nil, models.Specs{"maxGPULength": tt.maxLength})

			got, ok := findCheck(GetCompatibilityChecks(models.SelectionOf(gpu, pcCase)), RuleGPUCase)
			require.Equal(t, tt.emitted, ok)
			if !tt.emitted {
				return
			}
			assert.Equal(t, tt.status, got.Status)
			if tt.message != "" {
				assert.Equal(t, tt.message, got.Message)
			}
		})
	}
}

func TestMonitorGPURule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		monitor    []string
		gpu        []string
		emitted    bool
		compatible bool
	}{
		{name: "hdmi monitor is assumed reachable", monitor: []string{"HDMI"}, gpu: []string{"PCIe"}, emitted: true, compatible: true},
		{name: "shared explicit port", monitor: []string{"DVI-D"}, gpu: []string{"DVI-D", "PCIe"}, emitted: true, compatible: true},
		{name: "vga only monitor", monitor: []string{"VGA"}, gpu: []string{"PCIe"}, emitted: true, compatible: false},
		{name: "untagged monitor skipped", monitor: nil, gpu: []string{"PCIe"}, emitted: false},
		{name: "untagged gpu skipped", monitor: []string{"HDMI"}, gpu: nil, emitted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			monitor := part(models.TypeMonitor, "AOC 24G2", tt.monitor, nil)
			gpu := part(models.TypeGPU, "RX 6600", tt.gpu, nil)

			got, ok := findCheck(GetCompatibilityChecks(models.SelectionOf(monitor, gpu)), RuleMonitorGPU)
			require.Equal(t, tt.emitted, ok)
			if ok {
				assert.Equal(t, tt.compatible, got.Status)
			}
		})
	}
}

func TestFansCaseRule(t *testing.T) {
	t.Parallel()

	pcCase := part(models.TypeCase, "Lancool 215", []string{"ATX"}, nil)

	fit := GetCompatibilityChecks(models.SelectionOf(part(models.TypeFans, "P12", []string{"120mm"}, nil), pcCase))
	got, ok := findCheck(fit, RuleFansCase)
	require.True(t, ok)
	assert.True(t, got.Status)

	misfit := GetCompatibilityChecks(models.SelectionOf(part(models.TypeFans, "NF-A20", []string{"200mm"}, nil), pcCase))
	got, ok = findCheck(misfit, RuleFansCase)
	require.True(t, ok)
	assert.False(t, got.Status)
	assert.Equal(t, "NF-A20 may not fit the Lancool 215 case", got.Message)
}

func TestPeripheralOSRulesOnlyReportFailures(t *testing.T) {
	t.Parallel()

	cpu := part(models.TypeCPU, "Ryzen 5 5600", []string{"AM4"}, nil)

	windows := []string{"Windows", "USB"}
	macOnly := []string{"macOS"}

	t.Run("compatible peripherals emit nothing", func(t *testing.T) {
		t.Parallel()

		sel := models.SelectionOf(cpu,
			part(models.TypeKeyboard, "K552", windows, nil),
			part(models.TypeMouse, "G102", windows, nil),
			part(models.TypeAudio, "HyperX Cloud", windows, nil),
		)
		checks := GetCompatibilityChecks(sel)
		for _, name := range []string{RuleKeyboardOS, RuleMouseOS, RuleAudioOS} {
			_, ok := findCheck(checks, name)
			assert.False(t, ok, name)
		}
	})

	t.Run("incompatible peripherals fail", func(t *testing.T) {
		t.Parallel()

		sel := models.SelectionOf(cpu,
			part(models.TypeKeyboard, "Magic Keyboard", macOnly, nil),
			part(models.TypeMouse, "Magic Mouse", macOnly, nil),
			part(models.TypeAudio, "AirPods", nil, nil),
		)
		assert.Equal(t, []string{
			"Magic Keyboard may not be compatible with Windows",
			"Magic Mouse may not be compatible with Windows",
			"AirPods may not be compatible with Windows",
		}, GetIncompatibilities(sel))
	})

	t.Run("no cpu means no check", func(t *testing.T) {
		t.Parallel()

		sel := models.SelectionOf(part(models.TypeKeyboard, "Magic Keyboard", macOnly, nil))
		assert.Empty(t, GetCompatibilityChecks(sel))
	})
}

func TestChecksFollowRuleOrder(t *testing.T) {
	t.Parallel()

	sel := models.SelectionOf(
		part(models.TypeMouse, "Magic Mouse", []string{"macOS"}, nil),
		part(models.TypeFans, "P12", []string{"120mm"}, nil),
		part(models.TypeMonitor, "AOC 24G2", []string{"HDMI"}, nil),
		part(models.TypeCase, "NR200", nil, models.Specs{"maxGPULength": models.Number(330)}),
		part(models.TypeCPUCooler, "Wraith", []string{"AM4"}, nil),
		part(models.TypePSU, "650W PSU", nil, models.Specs{"wattage": models.Text("650W")}),
		part(models.TypeGPU, "RX 6600", []string{"PCIe"}, models.Specs{"length": models.Text("240mm")}),
		part(models.TypeMemory, "16GB DDR4", []string{"DDR4"}, nil),
		part(models.TypeMotherboard, "B550M", []string{"AM4"}, nil),
		part(models.TypeCPU, "Ryzen 5 5600", []string{"AM4"}, nil),
	)

	checks := GetCompatibilityChecks(sel)
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{
		RuleCPUMotherboard,
		RuleMemoryMotherboard,
		RulePower,
		RuleCoolerCPU,
		RuleGPUCase,
		RuleMonitorGPU,
		RuleFansCase,
		RuleMouseOS,
	}, names)
	assert.Equal(t, RuleNames()[:7], names[:7])
}

func TestIncompatibilitiesAreFailedChecks(t *testing.T) {
	t.Parallel()

	sel := models.SelectionOf(
		part(models.TypeCPU, "Ryzen 5 5600", []string{"AM4"}, models.Specs{"tdp": models.Number(65)}),
		part(models.TypeMotherboard, "B660M", []string{"LGA1700"}, nil),
		part(models.TypeGPU, "RTX 4090", []string{"PCIe"}, models.Specs{"tdp": models.Number(450), "length": models.Text("336mm")}),
		part(models.TypePSU, "Budget 300W", nil, models.Specs{"wattage": models.Text("300W")}),
		part(models.TypeCase, "Mini", nil, models.Specs{"maxGPULength": models.Text("300mm")}),
		part(models.TypeCPUCooler, "Hyper 212", []string{"AM4", "LGA1700"}, nil),
	)

	checks := GetCompatibilityChecks(sel)
	var want []string
	for _, c := range checks {
		if !c.Status {
			want = append(want, c.Message)
		}
	}

	got := GetIncompatibilities(sel)
	assert.Equal(t, want, got)
	assert.Len(t, got, 3)
}

func TestSparseSelections(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetCompatibilityChecks(nil))
	assert.Empty(t, GetIncompatibilities(nil))

	monitorOnly := models.SelectionOf(part(models.TypeMonitor, "AOC 24G2", []string{"HDMI"}, nil))
	assert.Empty(t, GetCompatibilityChecks(monitorOnly))
	assert.Empty(t, GetIncompatibilities(monitorOnly))

	withHoles := models.Selection{nil, part(models.TypeCPU, "Ryzen", nil, nil), nil}
	assert.NotPanics(t, func() { GetCompatibilityChecks(withHoles) })
}

func TestChecksDoNotMutateSelection(t *testing.T) {
	t.Parallel()

	cpu := part(models.TypeCPU, "Ryzen 5 5600", []string{"AM4"}, models.Specs{"tdp": models.Number(65)})
	mobo := part(models.TypeMotherboard, "B550M", []string{"AM4"}, nil)
	sel := models.SelectionOf(cpu, mobo)

	before := *cpu
	_ = GetCompatibilityChecks(sel)
	_ = CalculatePowerConsumption(sel)

	assert.Equal(t, before, *cpu)
	assert.Len(t, sel, 2)
}
