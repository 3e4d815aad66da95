package metadata

import (
	"encoding/xml"
	"fmt"
)

// opfPackage はOPFファイルのルート<package>要素を表します
type opfPackage struct {
	XMLName  xml.Name    `xml:"package"`
	Metadata opfMetadata `xml:"metadata"`
}

// opfMetadata は<metadata>要素のうち書誌情報の取得に必要な要素を保持します
type opfMetadata struct {
	Titles   []string  `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creators []string  `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Metas    []opfMeta `xml:"meta"`
}

// opfMeta は<meta name="..." content="..."/>要素を表します
type opfMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

// parseOPF はOPFファイルを解析します
func parseOPF(data []byte) (*opfPackage, error) {
	var pkg opfPackage
	if err := xml.Unmarshal(stripBOM(data), &pkg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseOPF, err)
	}
	return &pkg, nil
}

// metaContent は指定したname属性を持つ<meta>要素のcontentを返します
func (p *opfPackage) metaContent(name string) (string, bool) {
	for _, m := range p.Metadata.Metas {
		if m.Name == name {
			return m.Content, true
		}
	}
	return "", false
}
