package legacy

import (
	"github.com/rbatools/rbaconv/internal/filesystem"
)

// Minimal but representative legacy model used across reader tests.
const (
	fixtureMetabolism = `<?xml version="1.0" encoding="UTF-8"?>
<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1">
  <model id="cell">
    <listOfCompartments>
      <compartment id="cytoplasm"/>
      <compartment id="membrane"/>
    </listOfCompartments>
    <listOfSpecies>
      <species id="m_glc_xt" boundaryCondition="true"/>
      <species id="m_atp" boundaryCondition="false"/>
    </listOfSpecies>
    <listOfReactions>
      <reaction id="R_pts" reversible="false">
        <listOfReactants>
          <speciesReference species="m_glc_xt" stoichiometry="1"/>
        </listOfReactants>
        <listOfProducts>
          <speciesReference species="m_atp" stoichiometry="2"/>
        </listOfProducts>
      </reaction>
      <reaction id="Eatpm" reversible="true"/>
    </listOfReactions>
  </model>
</sbml>`

	fixtureParameters = `<?xml version="1.0" encoding="UTF-8"?>
<RBAParameters>
  <listOfMaximalDensities>
    <maximalDensity compartment="cytoplasm" value="3.4"/>
    <maximalDensity compartment="membrane">
      <functionReference function="F_surface"/>
      <functionReference function="F_scaling"/>
    </maximalDensity>
  </listOfMaximalDensities>
  <listOfFunctions>
    <function id="F_surface" type="linear" variable="growth_rate">
      <listOfParameters>
        <parameter id="LINEAR_COEF" value="1.2"/>
      </listOfParameters>
    </function>
    <function id="F_scaling" type="constant"/>
  </listOfFunctions>
</RBAParameters>`

	fixtureProteins = `<?xml version="1.0" encoding="UTF-8"?>
<RBAProteins>
  <listOfComponents>
    <component id="A" name="alanine" type="amino_acid" weight="1"/>
    <component id="C" name="cysteine" type="amino_acid" weight="1"/>
  </listOfComponents>
  <listOfSpecies>
    <protein id="BSU00010" compartment="cytoplasm">
      <composition>
        <componentReference component="A" stoichiometry="12"/>
        <componentReference component="C" stoichiometry="3"/>
      </composition>
    </protein>
  </listOfSpecies>
</RBAProteins>`

	fixtureEnzymes = `<?xml version="1.0" encoding="UTF-8"?>
<RBAEnzymes>
  <listOfEfficiencyFunctions>
    <function id="default" type="constant"/>
  </listOfEfficiencyFunctions>
  <listOfEnzymes>
    <enzyme id="R_pts_enzyme" zero_cost="0">
      <machineryComposition>
        <listOfReactants>
          <speciesReference species="BSU00010" stoichiometry="1"/>
          <speciesReference species="m_siroheme" stoichiometry="2"/>
        </listOfReactants>
      </machineryComposition>
      <enzymaticActivity>
        <enzymeEfficiency function="default">
          <listOfParameters>
            <parameter id="CONSTANT" value="200"/>
          </listOfParameters>
        </enzymeEfficiency>
        <transporterEfficiency>
          <function id="T_glc" type="michaelisMenten" variable="m_glc_xt"/>
        </transporterEfficiency>
      </enzymaticActivity>
    </enzyme>
    <enzyme id="R_spont_enzyme" zero_cost="1"/>
  </listOfEnzymes>
</RBAEnzymes>`

	fixtureProcesses = `<?xml version="1.0" encoding="UTF-8"?>
<RBAProcesses>
  <listOfProcesses>
    <process id="P_translation" name="Translation">
      <capacityConstraint>
        <machineryComposition>
          <listOfReactants>
            <speciesReference species="m_atp" stoichiometry="1"/>
          </listOfReactants>
        </machineryComposition>
        <capacity>
          <functionReference function="F_ribosome"/>
          <functionReference function="F_scaling"/>
        </capacity>
      </capacityConstraint>
      <operatingCosts>
        <production componentMap="translation_costs" set="protein"/>
        <degradation componentMap="degradation_costs" set="protein"/>
      </operatingCosts>
      <targets>
        <targetValue species="m_atp" value="0.3"/>
        <targetValue species="BSU00010" dilution_compensation="0" value="0.1"/>
        <targetValue species="m_rna" degradation="1">
          <functionReference function="F_deg"/>
        </targetValue>
        <targetReaction reaction="R_pts">
          <functionReference function="F_uptake"/>
          <functionReference function="F_scaling"/>
        </targetReaction>
      </targets>
    </process>
    <process id="P_folding" name="Folding"/>
  </listOfProcesses>
  <listOfComponentMaps>
    <componentMap id="translation_costs">
      <constantCost>
        <listOfReactants>
          <speciesReference species="m_atp" stoichiometry="2"/>
        </listOfReactants>
      </constantCost>
      <cost component="A" processing_cost="1">
        <listOfReactants>
          <speciesReference species="m_atp" stoichiometry="4"/>
        </listOfReactants>
        <listOfProducts>
          <speciesReference species="m_adp" stoichiometry="4"/>
        </listOfProducts>
      </cost>
    </componentMap>
  </listOfComponentMaps>
</RBAProcesses>`

	fixtureMedium = "Metabolite\tConcentration\nm_glc\t10\nm_o2\t0.21\n"
)

const fixtureDir = "old_data"

// fixtureFS builds an in-memory input directory holding the full fixture
// model.
func fixtureFS() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile(fixtureDir+"/metabolism.xml", []byte(fixtureMetabolism))
	mfs.AddFile(fixtureDir+"/parameters.xml", []byte(fixtureParameters))
	mfs.AddFile(fixtureDir+"/proteins.xml", []byte(fixtureProteins))
	mfs.AddFile(fixtureDir+"/rnas.xml", []byte(fixtureRNAs))
	mfs.AddFile(fixtureDir+"/dna.xml", []byte(fixtureDNA))
	mfs.AddFile(fixtureDir+"/enzymes.xml", []byte(fixtureEnzymes))
	mfs.AddFile(fixtureDir+"/processes.xml", []byte(fixtureProcesses))
	mfs.AddFile(fixtureDir+"/medium.tsv", []byte(fixtureMedium))
	return mfs
}

const (
	fixtureRNAs = `<?xml version="1.0" encoding="UTF-8"?>
<RBARnas>
  <listOfComponents>
    <component id="A" name="adenosine" type="nucleotide" weight="2.9"/>
  </listOfComponents>
  <listOfSpecies>
    <rna id="m_rna" compartment="cytoplasm">
      <composition>
        <componentReference component="A" stoichiometry="300"/>
      </composition>
    </rna>
  </listOfSpecies>
</RBARnas>`

	fixtureDNA = `<?xml version="1.0" encoding="UTF-8"?>
<RBADna>
  <listOfComponents>
    <component id="A" name="adenosine" type="nucleotide" weight="2.9"/>
  </listOfComponents>
  <listOfSpecies>
    <dna id="chromosome" compartment="cytoplasm">
      <composition>
        <componentReference component="A" stoichiometry="1000000"/>
      </composition>
    </dna>
  </listOfSpecies>
</RBADna>`
)
