package compat

import (
	"fmt"
	"strings"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
)

const (
	RuleCPUMotherboard    = "CPU + Motherboard"
	RuleMemoryMotherboard = "Memory + Motherboard"
	RulePower             = "Power Requirements"
	RuleCoolerCPU         = "CPU Cooler + CPU"
	RuleGPUCase           = "GPU Size + Case"
	RuleMonitorGPU        = "Monitor + GPU"
	RuleFansCase          = "Fans + Case"
	RuleKeyboardOS        = "Keyboard + OS"
	RuleMouseOS           = "Mouse + OS"
	RuleAudioOS           = "Audio + OS"
)

const (
	supportedFanSize = "120mm"
	supportedOS      = "Windows"
)

// Outputs every discrete GPU is assumed to carry even when its tags don't say so.
var standardDisplayOutputs = []string{"DisplayPort", "HDMI"}

type rule struct {
	name     string
	evaluate func(sel models.Selection) (models.Finding, bool)
}

// Evaluation order is part of the output contract.
var rules = []rule{
	{RuleCPUMotherboard, checkCPUMotherboard},
	{RuleMemoryMotherboard, checkMemoryMotherboard},
	{RulePower, checkPower},
	{RuleCoolerCPU, checkCoolerCPU},
	{RuleGPUCase, checkGPUCase},
	{RuleMonitorGPU, checkMonitorGPU},
	{RuleFansCase, checkFansCase},
	{RuleKeyboardOS, peripheralOSCheck(RuleKeyboardOS, models.TypeKeyboard)},
	{RuleMouseOS, peripheralOSCheck(RuleMouseOS, models.TypeMouse)},
	{RuleAudioOS, peripheralOSCheck(RuleAudioOS, models.TypeAudio)},
}

func finding(name string, ok bool, pass, fail string) models.Finding {
	msg := fail
	if ok {
		msg = pass
	}
	return models.Finding{Name: name, Status: ok, Message: msg}
}

func checkCPUMotherboard(sel models.Selection) (models.Finding, bool) {
	cpu, mobo := sel.First(models.TypeCPU), sel.First(models.TypeMotherboard)
	if cpu == nil || mobo == nil {
		return models.Finding{}, false
	}
	ok := ArePartsCompatible(cpu, mobo)
	return finding(RuleCPUMotherboard, ok,
		fmt.Sprintf("%s is compatible with %s", cpu.Name, mobo.Name),
		fmt.Sprintf("%s (%s) is not compatible with %s (%s)",
			cpu.Name, strings.Join(cpu.Compatibility, "/"),
			mobo.Name, strings.Join(mobo.Compatibility, "/")),
	), true
}

// Memory is not checked against the board yet; the finding always passes.
func checkMemoryMotherboard(sel models.Selection) (models.Finding, bool) {
	if sel.First(models.TypeMemory) == nil || sel.First(models.TypeMotherboard) == nil {
		return models.Finding{}, false
	}
	return finding(RuleMemoryMotherboard, true,
		"Memory is compatible with the motherboard",
		"Memory may not be compatible with this motherboard",
	), true
}

func checkPower(sel models.Selection) (models.Finding, bool) {
	psu := sel.First(models.TypePSU)
	if psu == nil || sel.Len() < 2 {
		return models.Finding{}, false
	}
	r := IsPSUSufficient(psu, sel)
	return finding(RulePower, r.Sufficient,
		fmt.Sprintf("%s (%dW) is sufficient for this build (%dW estimated)", psu.Name, r.PSUWattage, r.RequiredWattage),
		fmt.Sprintf("%s (%dW) may not be sufficient for this build (%dW estimated)", psu.Name, r.PSUWattage, r.RequiredWattage),
	), true
}

func checkCoolerCPU(sel models.Selection) (models.Finding, bool) {
	cpu, cooler := sel.First(models.TypeCPU), sel.First(models.TypeCPUCooler)
	if cpu == nil || cooler == nil {
		return models.Finding{}, false
	}
	ok := ArePartsCompatible(cpu, cooler)
	return finding(RuleCoolerCPU, ok,
		fmt.Sprintf("%s is compatible with %s", cooler.Name, cpu.Name),
		fmt.Sprintf("%s may not be compatible with %s", cooler.Name, cpu.Name),
	), true
}

// Skipped unless both lengths parse as numbers.
func checkGPUCase(sel models.Selection) (models.Finding, bool) {
	gpu, pcCase := sel.First(models.TypeGPU), sel.First(models.TypeCase)
	if gpu == nil || pcCase == nil {
		return models.Finding{}, false
	}
	rawLength, rawMax := gpu.Specs.Get(models.SpecLength), pcCase.Specs.Get(models.SpecMaxGPULength)
	gpuLength, ok := utils.ParseQuantity(rawLength)
	if !ok {
		return models.Finding{}, false
	}
	maxLength, ok := utils.ParseQuantity(rawMax)
	if !ok {
		return models.Finding{}, false
	}
	fits := gpuLength <= maxLength
	return finding(RuleGPUCase, fits,
		fmt.Sprintf("%s fits in the %s case", gpu.Name, pcCase.Name),
		fmt.Sprintf("%s (%s) may be too long for %s case (max %s)", gpu.Name, rawLength.Raw(), pcCase.Name, rawMax.Raw()),
	), true
}

func checkMonitorGPU(sel models.Selection) (models.Finding, bool) {
	monitor, gpu := sel.First(models.TypeMonitor), sel.First(models.TypeGPU)
	if monitor == nil || gpu == nil || len(monitor.Compatibility) == 0 || len(gpu.Compatibility) == 0 {
		return models.Finding{}, false
	}
	outputs := make(map[string]struct{}, len(gpu.Compatibility)+len(standardDisplayOutputs))
	for _, t := range gpu.Compatibility {
		outputs[t] = struct{}{}
	}
	for _, t := range standardDisplayOutputs {
		outputs[t] = struct{}{}
	}
	ok := false
	for _, t := range monitor.Compatibility {
		if _, found := outputs[t]; found {
			ok = true
			break
		}
	}
	return finding(RuleMonitorGPU, ok,
		fmt.Sprintf("%s can connect to %s", monitor.Name, gpu.Name),
		fmt.Sprintf("%s ports may not match %s outputs", monitor.Name, gpu.Name),
	), true
}

func checkFansCase(sel models.Selection) (models.Finding, bool) {
	fans, pcCase := sel.First(models.TypeFans), sel.First(models.TypeCase)
	if fans == nil || pcCase == nil {
		return models.Finding{}, false
	}
	ok := fans.HasTag(supportedFanSize)
	return finding(RuleFansCase, ok,
		fmt.Sprintf("%s fits the %s case", fans.Name, pcCase.Name),
		fmt.Sprintf("%s may not fit the %s case", fans.Name, pcCase.Name),
	), true
}

// Peripheral checks only report problems: a compatible peripheral produces
// no finding at all.
func peripheralOSCheck(name string, t models.ComponentType) func(models.Selection) (models.Finding, bool) {
	return func(sel models.Selection) (models.Finding, bool) {
		p := sel.First(t)
		if p == nil || sel.First(models.TypeCPU) == nil || p.HasTag(supportedOS) {
			return models.Finding{}, false
		}
		return models.Finding{
			Name:    name,
			Status:  false,
			Message: fmt.Sprintf("%s may not be compatible with %s", p.Name, supportedOS),
		}, true
	}
}
