package teacollection

// SampleCollection builds a small valid collection: a product release with
// an SBOM artefact published in two formats and a VEX artefact without any.
// It is used by the sample command and as a fixture.
func SampleCollection() *Collection {
	c := NewCollection()
	c.SetVersion(12)
	c.SetAuthor("Ford Prefect", "The Heart of Gold, inc", "ford.prefect@hog.example.com")
	c.SetProduct("Spaceship Mega3000 XL", "23.43.34", "20240423", "purl:pkg/generic/mega3000xl@23.43.34")

	sbom := NewArtefact()
	sbom.SetAuthor("Ford Prefect", "The Heart of Gold, inc", "ford.prefect@hog.example.com")
	sbom.SetName("SBOM")
	sbom.SetDescription("CycloneDX SBOM for the software")
	c.AddArtefact(sbom)

	cdxJSON := NewFormat()
	cdxJSON.SetMediaType("application/vnd.cyclonedx+json")
	cdxJSON.SetURL("https://product.example.com/stuff.json", "https://product.example.com/stuff.sbom.sig")
	cdxJSON.SetSize(74747474)
	cdxJSON.SetHash("lkasdfjlkasdfj")
	sbom.AddFormat(cdxJSON)

	cdxXML := NewFormat()
	cdxXML.SetMediaType("application/vnd.cyclonedx+xml")
	cdxXML.SetURL("https://product.example.com/stuff.xml", "")
	sbom.AddFormat(cdxXML)

	vex := NewArtefact()
	vex.SetName("VEX file")
	c.AddArtefact(vex)
	return c
}
