package consts

const (
	CHARGE       = 1.602176634e-19    // Elementary charge (C)
	BOLTZMANN    = 1.380649e-23       // Boltzmann constant (J/K)
	BOLTZMANN_EV = BOLTZMANN / CHARGE // Boltzmann constant (eV/K), ~8.617e-5
	KELVIN       = 273.15             // 0 degC in Kelvin (K)
	PHOTON_EV_NM = 1240.0             // hc in eV*nm, E(eV) = 1240 / lambda(nm)
	CM_PER_INCH  = 2.54               // Wafer diameters are quoted in inches
)
