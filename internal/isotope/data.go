package isotope

// Values follow the published decay chains as of early 2013.
func shipped() []Record {
	return []Record{
		// Thorium series
		single("Cf-252", Years(2.645), "Cm-248"),
		single("Cm-248", Years(3.4)*E(5), "Pu-244"),
		single("Cm-244", Years(18.1), "Pu-240"),
		single("Pu-244", Years(8)*E(7), "U-240"),
		single("U-240", Hours(14.1), "Np-240"),
		single("Np-240", Hours(1.032), "Pu-240"),
		single("Pu-240", Years(6561), "U-236"),
		single("Pu-236", Years(2.858), "U-232"),
		single("U-236", Years(2.3)*E(7), "Th-232"),
		single("U-232", Years(68.9), "Th-228"),
		single("Th-232", Years(1.405)*E(10), "Ra-228"),
		single("Ra-228", Years(5.75), "Ac-228"),
		single("Ac-228", Hours(6.25), "Th-228"),
		single("Th-228", Years(1.9116), "Ra-224"),
		single("Ra-224", Days(3.6319), "Rn-220"),
		single("Rn-220", Seconds(55.6), "Po-216"),
		single("Po-216", Seconds(0.145), "Pb-212"),
		single("Pb-212", Hours(10.64), "Bi-212"),
		branched("Bi-212", Minutes(60.55), Branch{0.6406, "Po-212"}, Branch{0.3594, "Tl-208"}),
		single("Po-212", Seconds(299)*E(-9), "Pb-208"),
		single("Tl-208", Minutes(3.053), "Pb-208"),

		// Neptunium series
		single("Cf-249", Years(351), "Cm-245"),
		single("Cm-245", Years(8500), "Pu-241"),
		single("Pu-241", Years(14.4), "Am-241"),
		single("Am-241", Years(432.7), "Np-237"),
		single("Np-237", Years(2.14)*E(6), "Pa-233"),
		single("Pa-233", Days(27.0), "U-233"),
		single("U-233", Years(1.592)*E(5), "Th-229"),
		single("Th-229", Years(7340), "Ra-225"),
		single("Ra-225", Days(14.9), "Ac-225"),
		single("Ac-225", Days(10.0), "Fr-221"),
		single("Fr-221", Minutes(4.8), "At-217"),
		single("At-217", Seconds(32)*E(-3), "Bi-213"),
		branched("Bi-213", Minutes(46.5), Branch{0.9780, "Po-213"}, Branch{0.022, "Tl-209"}),
		single("Po-213", Seconds(3.72)*E(-6), "Pb-209"),
		single("Tl-209", Minutes(2.2), "Pb-209"),
		single("Pb-209", Hours(3.25), "Bi-209"),
		single("Bi-209", Years(1.9)*E(19), "Tl-205"),

		// Radium series (aka uranium series)
		single("Am-242", Hours(16.02), "Cm-242"),
		single("Cm-242", Days(162.8), "Pu-238"),
		single("Pu-242", Years(376)*E(3), "U-238"),
		single("Pu-238", Years(87.7), "U-234"),
		single("U-238", Years(4.468)*E(9), "Th-234"),
		single("Th-234", Days(24.10), "Pa-234m"),
		branched("Pa-234m", Minutes(1.16), Branch{0.9984, "U-234"}, Branch{0.0016, "Pa-234"}),
		single("Pa-234", Hours(6.70), "U-234"),
		single("U-234", Years(245500), "Th-230"),
		single("Th-230", Years(75380), "Ra-226"),
		single("Ra-226", Years(1602), "Rn-222"),
		single("Rn-222", Days(3.8235), "Po-218"),
		branched("Po-218", Minutes(3.10), Branch{0.9998, "Pb-214"}, Branch{0.0002, "At-218"}),
		branched("At-218", Seconds(1.5), Branch{0.9990, "Bi-214"}, Branch{0.0010, "Rn-218"}),
		single("Rn-218", Seconds(35)*E(-3), "Po-214"),
		single("Pb-214", Minutes(26.8), "Bi-214"),
		branched("Bi-214", Minutes(19.9), Branch{0.9998, "Po-214"}, Branch{0.0002, "Tl-210"}),
		single("Po-214", Seconds(164.3)*E(-6), "Pb-210"),
		single("Tl-210", Minutes(1.30), "Pb-210"),
		single("Pb-210", Years(22.3), "Bi-210"),
		branched("Bi-210", Days(5.013), Branch{0.9999987, "Po-210"}, Branch{0.0000013, "Tl-206"}),
		single("Po-210", Days(138.376), "Pb-206"),
		single("Tl-206", Minutes(4.199), "Pb-206"),

		// Actinium series
		single("Am-243", Years(7370), "Np-239"),
		single("Np-239", Days(2.356), "Pu-239"),
		single("Pu-239", Years(2.41)*E(4), "U-235"),
		single("U-235", Years(7.04)*E(8), "Th-231"),
		single("Th-231", Hours(25.52), "Pa-231"),
		single("Pa-231", Years(32760), "Ac-227"),
		branched("Ac-227", Years(21.772), Branch{0.9862, "Th-227"}, Branch{0.0138, "Fr-223"}),
		single("Th-227", Days(18.68), "Ra-223"),
		branched("Fr-223", Minutes(22.00), Branch{0.99994, "Ra-223"}, Branch{0.00006, "At-219"}),
		single("Ra-223", Days(11.43), "Rn-219"),
		branched("At-219", Seconds(56), Branch{0.9700, "Bi-215"}, Branch{0.0300, "Rn-219"}),
		single("Rn-219", Seconds(3.96), "Po-215"),
		single("Bi-215", Minutes(7.6), "Po-215"),
		branched("Po-215", Seconds(1.781)*E(-3), Branch{0.9999977, "Pb-211"}, Branch{0.0000023, "At-215"}),
		single("At-215", Seconds(0.1)*E(-3), "Bi-211"),
		single("Pb-211", Minutes(36.1), "Bi-211"),
		branched("Bi-211", Minutes(2.14), Branch{0.99724, "Tl-207"}, Branch{0.00276, "Po-211"}),
		single("Po-211", Seconds(516)*E(-3), "Pb-207"),
		single("Tl-207", Minutes(4.77), "Pb-207"),

		// Fission products
		// strontium-90
		single("Sr-90", Years(28.8), "Y-90"),
		single("Y-90", Hours(64), "Zr-90"),
		// cesium-134
		single("Cs-134", Years(2.0652), "Ba-134"),
		// cesium-137
		single("Cs-137", Years(30.17), "Ba-137m"),
		single("Ba-137m", Seconds(153), "Ba-137"),

		// light
		single("Y-99", Seconds(1.470), "Zr-99"),
		single("Zr-99", Seconds(2.1), "Nb-99m"),
		single("Nb-99m", Minutes(2.6), "Nb-99"),
		single("Nb-99", Seconds(15.0), "Mo-99m2"),
		single("Mo-99m2", Seconds(0.76)*E(-3), "Mo-99m1"),
		single("Mo-99m1", Seconds(15.5)*E(-3), "Mo-99"),
		single("Mo-99", Days(2.7489), "Tc-99m"),
		single("Tc-99m", Hours(6.0058), "Tc-99"),
		single("Tc-99", Years(2.11)*E(5), "Ru-99"),

		// heavy
		single("Te-135", Seconds(19.0), "I-135"),
		single("I-135", Hours(6.57), "Xe-135"),
		single("Xe-135", Hours(9.14), "Cs-135"),
		single("Cs-135", Years(2.3)*E(6), "Ba-135"),
		// europium 154
		single("Eu-154", Years(8.593), "Gd-154"),
	}
}

func single(id string, halflife float64, product string) Record {
	return Record{ID: id, Halflife: halflife, Branches: []Branch{{Fraction: 1, Product: product}}}
}

func branched(id string, halflife float64, branches ...Branch) Record {
	return Record{ID: id, Halflife: halflife, Branches: branches}
}
