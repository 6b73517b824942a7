package blocks

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	DefaultBlogPostsLimit        = 3
	DefaultTestimonialsLimit     = 3
	DefaultFeaturedServicesLimit = 6
	DefaultTeamMembersLimit      = 6
	DefaultServiceAreasLimit     = 12
	DefaultFAQLimit              = 10
)

var aliases = map[string]Kind{
	"calltoaction": KindCTA,
	"richtext":     KindContent,
	"faqs":         KindFAQ,
	"services":     KindFeaturedServices,
	"areas":        KindServiceAreas,
	"team":         KindTeamMembers,
	"blog":         KindBlogPosts,
	"posts":        KindBlogPosts,
}

// ParseKind maps a stored tag to a known kind. Matching ignores case and the
// "-", "_" and "Block"/"Section" spellings different CMS setups use.
func ParseKind(tag string) (Kind, bool) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	norm = strings.TrimSuffix(norm, "block")
	norm = strings.TrimSuffix(norm, "section")
	for _, k := range Kinds() {
		if strings.ToLower(string(k)) == norm {
			return k, true
		}
	}
	if k, ok := aliases[norm]; ok {
		return k, true
	}
	return "", false
}

// Decode builds the typed block for tag. It never fails: unknown tags become Unknown and
// fields that are absent or malformed keep their defaults.
func Decode(tag string, fields json.RawMessage) Block {
	kind, ok := ParseKind(tag)
	if !ok {
		return Unknown{Tag: tag}
	}

	switch kind {
	case KindHero:
		var b Hero
		decodeInto(fields, &b)
		return b
	case KindCTA:
		var b CTA
		decodeInto(fields, &b)
		if b.Style == "" {
			b.Style = "primary"
		}
		return b
	case KindContent:
		var b Content
		decodeInto(fields, &b)
		return b
	case KindFAQ:
		var b FAQ
		decodeInto(fields, &b)
		b.Items = nonEmptyFAQItems(b.Items)
		b.Limit = limitOr(b.Limit, DefaultFAQLimit)
		return b
	case KindFeaturedServices:
		var b FeaturedServices
		decodeInto(fields, &b)
		b.Services = nonEmptyStrings(b.Services)
		b.Limit = limitOr(b.Limit, DefaultFeaturedServicesLimit)
		return b
	case KindServiceAreas:
		var b ServiceAreas
		decodeInto(fields, &b)
		b.Limit = limitOr(b.Limit, DefaultServiceAreasLimit)
		return b
	case KindTestimonials:
		var b Testimonials
		decodeInto(fields, &b)
		b.Limit = limitOr(b.Limit, DefaultTestimonialsLimit)
		return b
	case KindTeamMembers:
		var b TeamMembers
		decodeInto(fields, &b)
		b.Limit = limitOr(b.Limit, DefaultTeamMembersLimit)
		return b
	case KindBlogPosts:
		var b BlogPosts
		decodeInto(fields, &b)
		b.Limit = limitOr(b.Limit, DefaultBlogPostsLimit)
		return b
	}
	return Unknown{Tag: tag}
}

// decodeInto decodes field by field so one bad value does not blank the whole block.
func decodeInto(fields json.RawMessage, dst any) {
	fields = bytes.TrimSpace(fields)
	if len(fields) == 0 || fields[0] != '{' {
		return
	}
	if err := json.Unmarshal(fields, dst); err == nil {
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(fields, &raw); err != nil {
		return
	}
	for key, value := range raw {
		single, err := json.Marshal(map[string]json.RawMessage{key: value})
		if err != nil {
			continue
		}
		// a type mismatch leaves only this field at its zero value
		_ = json.Unmarshal(single, dst)
	}
}

func limitOr(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}

func nonEmptyStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonEmptyFAQItems(in []FAQItem) []FAQItem {
	out := make([]FAQItem, 0, len(in))
	for _, it := range in {
		if strings.TrimSpace(it.Question) == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}
