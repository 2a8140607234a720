package specimport

import (
	"strings"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
)

// Convert maps a spec sheet onto the fields the compatibility rules read.
// Labels it does not know are kept as text specs under a camelCase key.
func Convert(name string, t models.ComponentType, sheet []models.PartSpec) models.Component {
	c := models.Component{
		Name:  name,
		Type:  t,
		Specs: models.Specs{},
	}
	tags := newTagSet()

	for _, group := range sheet {
		label := strings.ToLower(group.Name)
		joined := strings.Join(group.Values, ", ")

		switch {
		case label == "socket" || label == "socket / cpu" || label == "cpu socket":
			for _, v := range group.Values {
				tags.add(utils.SocketTag(v))
			}
		case label == "tdp" || label == "thermal design power":
			if w, ok := utils.ExtractWatts(joined); ok {
				c.Specs[models.SpecTDP] = models.Number(float64(w))
			}
		case label == "wattage":
			if w, ok := utils.ExtractWatts(joined); ok {
				c.Specs[models.SpecWattage] = models.Number(float64(w))
			}
		case label == "length" && t == models.TypeGPU:
			if mm, ok := utils.ExtractMillimetres(joined); ok {
				c.Specs[models.SpecLength] = models.Number(float64(mm))
			}
		case label == "maximum video card length":
			if mm, ok := longest(group.Values); ok {
				c.Specs[models.SpecMaxGPULength] = models.Number(float64(mm))
			}
		case label == "memory type" || (label == "speed" && t == models.TypeMemory):
			tags.add(utils.MemoryTypeTag(joined))
		case label == "form factor" || label == "motherboard form factor":
			for _, v := range group.Values {
				tags.add(strings.TrimSpace(v))
			}
		case label == "size" && t == models.TypeFans:
			tags.add(utils.FanSizeTag(joined))
		case label == "inputs" || strings.HasSuffix(label, "outputs"):
			// GPU sheets list a count per port, e.g. "HDMI Outputs: 1".
			if strings.HasSuffix(label, "outputs") && strings.TrimSpace(joined) == "0" {
				break
			}
			for _, port := range utils.PortTags(group.Name + " " + joined) {
				tags.add(port)
			}
		}

		if key := specKey(group.Name); key != "" {
			if c.Specs.Get(key).IsAbsent() {
				c.Specs[key] = models.Text(joined)
			}
		}
	}

	c.Compatibility = tags.list()
	return c
}

// Cases list one length per drive cage layout; the largest is the limit.
func longest(values []string) (int, bool) {
	best, found := 0, false
	for _, v := range values {
		if mm, ok := utils.ExtractMillimetres(v); ok && mm > best {
			best, found = mm, true
		}
	}
	return best, found
}

type tagSet struct {
	seen map[string]bool
	tags []string
}

func newTagSet() *tagSet {
	return &tagSet{seen: map[string]bool{}}
}

func (s *tagSet) add(tag string) {
	if tag == "" || s.seen[tag] {
		return
	}
	s.seen[tag] = true
	s.tags = append(s.tags, tag)
}

func (s *tagSet) list() []string {
	return s.tags
}
