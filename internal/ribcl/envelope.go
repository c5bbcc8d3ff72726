package ribcl

import "github.com/beevik/etree"

// ProtocolVersion is the RIBCL version tag sent on every envelope.
const ProtocolVersion = "2.0"

// BuildEnvelope wraps cmd in the RIBCL/LOGIN envelope carrying cfg's
// credentials. Attribute values are escaped, so any credential yields a
// well-formed document.
func BuildEnvelope(cmd Command, cfg ConnectionConfig) string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	root := doc.CreateElement("RIBCL")
	root.CreateAttr("VERSION", ProtocolVersion)

	login := root.CreateElement("LOGIN")
	login.CreateAttr("USER_LOGIN", cfg.Username)
	login.CreateAttr("PASSWORD", cfg.Password)

	section := login.CreateElement(string(cmd.Section))
	section.CreateAttr("MODE", string(cmd.Mode))

	body := section.CreateElement(cmd.Tag)
	for _, a := range cmd.Attrs {
		body.CreateAttr(a.Key, a.Value)
	}

	doc.Indent(1)
	// Serialising to memory does not fail.
	out, _ := doc.WriteToString()
	return out
}
