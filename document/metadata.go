package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var xmlescape = strings.NewReplacer("<", "&lt;", "&", "&amp;")

func (d *PDFDocument) getMetadata() string {
	var docID, instanceID uuid.UUID
	var dates string
	if d.SuppressInfo {
		// Reproducible output: identifiers are derived from the document
		// itself, timestamps are left out.
		seed := d.producer + "/" + d.Title
		docID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed+"#document"))
		instanceID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed+"#instance"))
	} else {
		docID = uuid.New()
		instanceID = uuid.New()
		isoformatted := d.CreationDate.Format(time.RFC3339)
		dates = fmt.Sprintf(`
	 <rdf:Description rdf:about="" xmlns:xmp="http://ns.adobe.com/xap/1.0/">
		<xmp:CreateDate>%[1]s</xmp:CreateDate>
		<xmp:ModifyDate>%[1]s</xmp:ModifyDate>
		<xmp:MetadataDate>%[1]s</xmp:MetadataDate>
	 </rdf:Description>`, isoformatted)
	}

	str := `<?xpacket begin="%[1]s" id="W5M0MpCehiHzreSzNTczkc9d"?>
	<x:xmpmeta xmlns:x="adobe:ns:meta/">
   <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
	 <rdf:Description rdf:about="" xmlns:xmpMM="http://ns.adobe.com/xap/1.0/mm/">
	   <xmpMM:DocumentID>uuid:%[2]s</xmpMM:DocumentID>
	   <xmpMM:InstanceID>uuid:%[3]s</xmpMM:InstanceID>
	 </rdf:Description>%[4]s
	 <rdf:Description rdf:about="" xmlns:pdf="http://ns.adobe.com/pdf/1.3/">
	   <pdf:Producer>%[5]s</pdf:Producer>
	 </rdf:Description>
	 <rdf:Description rdf:about="" xmlns:dc="http://purl.org/dc/elements/1.1/">
	   <dc:title>%[6]s</dc:title>
	   <dc:creator>%[7]s</dc:creator>
	 </rdf:Description>
   </rdf:RDF>
 </x:xmpmeta>
<?xpacket end="r"?>`

	return fmt.Sprintf(str,
		"\xEF\xBB\xBF",
		docID,
		instanceID,
		dates,
		xmlescape.Replace(d.producer),
		xmlescape.Replace(d.Title),
		xmlescape.Replace(d.Creator),
	)
}
