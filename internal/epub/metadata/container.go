package metadata

import (
	"encoding/xml"
	"fmt"
)

// containerPath はOPFファイルの場所を示すコンテナ文書のアーカイブ内パス
const containerPath = "META-INF/container.xml"

// containerXML はMETA-INF/container.xmlのルート要素を表します
type containerXML struct {
	XMLName   xml.Name            `xml:"container"`
	Rootfiles []containerRootfile `xml:"rootfiles>rootfile"`
}

// containerRootfile は<rootfile>要素を表します
type containerRootfile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// parseContainer はコンテナ文書を解析してOPFファイルのパスを返します
func parseContainer(data []byte) (string, error) {
	var c containerXML
	if err := xml.Unmarshal(stripBOM(data), &c); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParseContainer, err)
	}

	for _, rf := range c.Rootfiles {
		if rf.FullPath != "" {
			return rf.FullPath, nil
		}
	}

	return "", ErrRootfileNotFound
}
