package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/beevik/etree"
)

// AntTaskName is the element name of the legacy Ant task
const AntTaskName = "massminify"

// antBoolAttrs and antStringAttrs map task attributes to config keys
var antBoolAttrs = map[string]string{
	"recurse":   "recurse",
	"minifyjs":  "js.minify",
	"minifycss": "css.minify",
}

var antStringAttrs = map[string]string{
	"dir":            "dir",
	"combinejs":      "js.combine",
	"consolidatejs":  "js.consolidate",
	"combinecss":     "css.combine",
	"consolidatecss": "css.consolidate",
}

// LoadAntBuild reads the <massminify> task of an Ant build file and returns
// its settings keyed by config path. When target is set, the task is taken
// from that target; otherwise the first task in the document is used.
//
// ${name} references are expanded from the project's <property> elements and
// ${basedir}. A relative dir is resolved against the project base directory.
func LoadAntBuild(path, target string) (map[string]interface{}, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "Ant build file %s not found", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse Ant build file %s", path)
	}

	project := doc.Root()
	if project == nil {
		return nil, errors.Newf(errors.ErrConfigParse, "Ant build file %s is empty", path)
	}

	props := antProperties(project, path)
	expand := func(s string) string {
		return os.Expand(s, func(name string) string {
			if v, ok := props[name]; ok {
				return v
			}
			return "${" + name + "}"
		})
	}

	task, taskErr := findAntTask(project, target)
	if taskErr != nil {
		return nil, taskErr.WithDetail("path", path)
	}

	values := make(map[string]interface{})
	for attr, key := range antStringAttrs {
		if a := task.SelectAttr(attr); a != nil {
			values[key] = expand(a.Value)
		}
	}
	for attr, key := range antBoolAttrs {
		a := task.SelectAttr(attr)
		if a == nil {
			continue
		}
		b, err := parseAntBool(expand(a.Value))
		if err != nil {
			return nil, errors.Newf(errors.ErrConfigParse, "attribute %s=%q is not a boolean", attr, a.Value).
				WithDetail("path", path)
		}
		values[key] = b
	}

	if dir, ok := values["dir"].(string); ok && dir != "" && !filepath.IsAbs(dir) {
		values["dir"] = filepath.Join(props["basedir"], dir)
	}

	var order []interface{}
	for _, el := range task.SelectElements("order") {
		file := expand(el.SelectAttrValue("file", ""))
		raw := expand(el.SelectAttrValue("position", ""))
		pos, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Newf(errors.ErrConfigParse, "order %q has an invalid position %q", file, raw).
				WithDetail("path", path)
		}
		order = append(order, map[string]interface{}{"file": file, "position": pos})
	}
	if len(order) > 0 {
		values["order"] = order
	}

	return values, nil
}

func findAntTask(project *etree.Element, target string) (*etree.Element, *errors.MinifyError) {
	if target == "" {
		if task := project.FindElement("//" + AntTaskName); task != nil {
			return task, nil
		}
		return nil, errors.Newf(errors.ErrConfigInvalid, "no <%s> task found", AntTaskName)
	}

	for _, t := range project.SelectElements("target") {
		if t.SelectAttrValue("name", "") != target {
			continue
		}
		if task := t.FindElement(".//" + AntTaskName); task != nil {
			return task, nil
		}
		return nil, errors.Newf(errors.ErrConfigInvalid, "target %q has no <%s> task", target, AntTaskName)
	}
	return nil, errors.Newf(errors.ErrConfigInvalid, "target %q not found", target)
}

func antProperties(project *etree.Element, path string) map[string]string {
	base := filepath.Dir(path)
	if bd := project.SelectAttrValue("basedir", ""); bd != "" {
		if filepath.IsAbs(bd) {
			base = bd
		} else {
			base = filepath.Join(base, bd)
		}
	}

	props := map[string]string{"basedir": base}
	for _, p := range project.SelectElements("property") {
		name := p.SelectAttrValue("name", "")
		if name == "" {
			continue
		}
		// Ant properties are immutable: the first definition wins
		if _, ok := props[name]; ok {
			continue
		}
		if v := p.SelectAttr("value"); v != nil {
			props[name] = v.Value
		} else if loc := p.SelectAttr("location"); loc != nil {
			props[name] = filepath.Join(base, loc.Value)
		}
	}
	return props
}

// parseAntBool accepts the values Ant treats as booleans
func parseAntBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	default:
		return false, errors.Newf(errors.ErrConfigParse, "invalid boolean %q", s)
	}
}
