package office

// table is the California DMV field office list in registration order.
// Office IDs are the values the booking form expects in officeId.
var table = []Office{
	{ID: 537, Name: "ALTURAS"},
	{ID: 587, Name: "ARLETA"},
	{ID: 661, Name: "ARVIN"},
	{ID: 570, Name: "AUBURN"},
	{ID: 529, Name: "BAKERSFIELD"},
	{ID: 679, Name: "BAKERSFIELD SW"},
	{ID: 641, Name: "BANNING"},
	{ID: 582, Name: "BARSTOW"},
	{ID: 576, Name: "BELL GARDENS"},
	{ID: 606, Name: "BELLFLOWER"},
	{ID: 585, Name: "BISHOP"},
	{ID: 528, Name: "BLYTHE"},
	{ID: 597, Name: "BRAWLEY"},
	{ID: 550, Name: "CAPITOLA"},
	{ID: 625, Name: "CARMICHAEL"},
	{ID: 520, Name: "CHICO"},
	{ID: 613, Name: "CHULA VISTA"},
	{ID: 580, Name: "CLOVIS"},
	{ID: 603, Name: "COALINGA"},
	{ID: 564, Name: "COLUSA"},
	{ID: 581, Name: "COMPTON"},
	{ID: 523, Name: "CONCORD"},
	{ID: 534, Name: "CORTE MADERA"},
	{ID: 628, Name: "COSTA MESA"},
	{ID: 524, Name: "CRESCENT CITY"},
	{ID: 514, Name: "CULVER CITY"},
	{ID: 599, Name: "DALY CITY"},
	{ID: 598, Name: "DAVIS"},
	{ID: 615, Name: "DELANO"},
	{ID: 669, Name: "EL CAJON"},
	{ID: 527, Name: "EL CENTRO"},
	{ID: 556, Name: "EL CERRITO"},
	{ID: 685, Name: "EL MONTE"},
	{ID: 526, Name: "EUREKA"},
	{ID: 621, Name: "FAIRFIELD"},
	{ID: 643, Name: "FALL RIVER MILLS"},
	{ID: 655, Name: "FOLSOM"},
	{ID: 657, Name: "FONTANA"},
	{ID: 590, Name: "FORT BRAGG"},
	{ID: 644, Name: "FREMONT"},
	{ID: 505, Name: "FRESNO"},
	{ID: 646, Name: "FRESNO NORTH"},
	{ID: 607, Name: "FULLERTON"},
	{ID: 627, Name: "GARBERVILLE"},
	{ID: 623, Name: "GILROY"},
	{ID: 510, Name: "GLENDALE"},
	{ID: 670, Name: "GOLETA"},
	{ID: 541, Name: "GRASS VALLEY"},
	{ID: 565, Name: "HANFORD"},
	{ID: 609, Name: "HAWTHORNE"},
	{ID: 579, Name: "HAYWARD"},
	{ID: 635, Name: "HEMET"},
	{ID: 546, Name: "HOLLISTER"},
	{ID: 508, Name: "HOLLYWOOD"},
	{ID: 652, Name: "HOLLYWOOD WEST"},
	{ID: 578, Name: "INDIO"},
	{ID: 610, Name: "INGLEWOOD"},
	{ID: 521, Name: "JACKSON"},
	{ID: 647, Name: "KING CITY"},
	{ID: 605, Name: "LAGUNA HILLS"},
	{ID: 687, Name: "LAKE ISABELLA"},
	{ID: 530, Name: "LAKEPORT"},
	{ID: 595, Name: "LANCASTER"},
	{ID: 617, Name: "LINCOLN PARK"},
	{ID: 622, Name: "LODI"},
	{ID: 589, Name: "LOMPOC"},
	{ID: 692, Name: "LOMPOC DLPC"},
	{ID: 507, Name: "LONG BEACH"},
	{ID: 502, Name: "LOS ANGELES"},
	{ID: 693, Name: "LOS ANGELES DLPC"},
	{ID: 650, Name: "LOS BANOS"},
	{ID: 640, Name: "LOS GATOS"},
	{ID: 533, Name: "MADERA"},
	{ID: 658, Name: "MANTECA"},
	{ID: 566, Name: "MARIPOSA"},
	{ID: 536, Name: "MERCED"},
	{ID: 557, Name: "MODESTO"},
	{ID: 511, Name: "MONTEBELLO"},
	{ID: 639, Name: "MOUNT SHASTA"},
	{ID: 540, Name: "NAPA"},
	{ID: 584, Name: "NEEDLES"},
	{ID: 662, Name: "NEWHALL"},
	{ID: 586, Name: "NORCO"},
	{ID: 686, Name: "NOVATO"},
	{ID: 504, Name: "OAKLAND CLAREMONT"},
	{ID: 604, Name: "OAKLAND COLISEUM"},
	{ID: 596, Name: "OCEANSIDE"},
	{ID: 522, Name: "OROVILLE"},
	{ID: 636, Name: "OXNARD"},
	{ID: 683, Name: "PALM DESERT"},
	{ID: 659, Name: "PALM SPRINGS"},
	{ID: 690, Name: "PALMDALE"},
	{ID: 601, Name: "PARADISE"},
	{ID: 509, Name: "PASADENA"},
	{ID: 574, Name: "PASO ROBLES"},
	{ID: 634, Name: "PETALUMA"},
	{ID: 592, Name: "PITTSBURG"},
	{ID: 525, Name: "PLACERVILLE"},
	{ID: 631, Name: "PLEASANTON"},
	{ID: 532, Name: "POMONA"},
	{ID: 573, Name: "PORTERVILLE"},
	{ID: 676, Name: "POWAY"},
	{ID: 544, Name: "QUINCY"},
	{ID: 612, Name: "RANCHO CUCAMONGA"},
	{ID: 558, Name: "RED BLUFF"},
	{ID: 551, Name: "REDDING"},
	{ID: 626, Name: "REDLANDS"},
	{ID: 548, Name: "REDWOOD CITY"},
	{ID: 633, Name: "REEDLEY"},
	{ID: 577, Name: "RIDGECREST"},
	{ID: 545, Name: "RIVERSIDE"},
	{ID: 656, Name: "RIVERSIDE EAST"},
	{ID: 673, Name: "ROCKLIN"},
	{ID: 543, Name: "ROSEVILLE"},
	{ID: 501, Name: "SACRAMENTO"},
	{ID: 602, Name: "SACRAMENTO SOUTH"},
	{ID: 539, Name: "SALINAS"},
	{ID: 568, Name: "SAN ANDREAS"},
	{ID: 512, Name: "SAN BERNARDINO"},
	{ID: 648, Name: "SAN CLEMENTE"},
	{ID: 506, Name: "SAN DIEGO"},
	{ID: 519, Name: "SAN DIEGO CLAIREMONT"},
	{ID: 503, Name: "SAN FRANCISCO"},
	{ID: 516, Name: "SAN JOSE"},
	{ID: 645, Name: "SAN JOSE DLPC"},
	{ID: 547, Name: "SAN LUIS OBISPO"},
	{ID: 620, Name: "SAN MARCOS DESCANSO"},
	{ID: 689, Name: "SAN MARCOS RANCHEROS"},
	{ID: 593, Name: "SAN MATEO"},
	{ID: 619, Name: "SAN PEDRO"},
	{ID: 677, Name: "SAN YSIDRO"},
	{ID: 542, Name: "SANTA ANA"},
	{ID: 549, Name: "SANTA BARBARA"},
	{ID: 632, Name: "SANTA CLARA"},
	{ID: 563, Name: "SANTA MARIA"},
	{ID: 616, Name: "SANTA MONICA"},
	{ID: 630, Name: "SANTA PAULA"},
	{ID: 555, Name: "SANTA ROSA"},
	{ID: 668, Name: "SANTA TERESA"},
	{ID: 567, Name: "SEASIDE"},
	{ID: 660, Name: "SHAFTER"},
	{ID: 680, Name: "SIMI VALLEY"},
	{ID: 569, Name: "SONORA"},
	{ID: 538, Name: "SOUTH LAKE TAHOE"},
	{ID: 698, Name: "STANTON DLPC"},
	{ID: 517, Name: "STOCKTON"},
	{ID: 531, Name: "SUSANVILLE"},
	{ID: 575, Name: "TAFT"},
	{ID: 672, Name: "TEMECULA"},
	{ID: 663, Name: "THOUSAND OAKS"},
	{ID: 608, Name: "TORRANCE"},
	{ID: 642, Name: "TRACY"},
	{ID: 513, Name: "TRUCKEE"},
	{ID: 594, Name: "TULARE"},
	{ID: 553, Name: "TULELAKE"},
	{ID: 649, Name: "TURLOCK"},
	{ID: 638, Name: "TWENTYNINE PALMS"},
	{ID: 535, Name: "UKIAH"},
	{ID: 588, Name: "VACAVILLE"},
	{ID: 554, Name: "VALLEJO"},
	{ID: 515, Name: "VAN NUYS"},
	{ID: 560, Name: "VENTURA"},
	{ID: 629, Name: "VICTORVILLE"},
	{ID: 559, Name: "VISALIA"},
	{ID: 624, Name: "WALNUT CREEK"},
	{ID: 583, Name: "WATSONVILLE"},
	{ID: 572, Name: "WEAVERVILLE"},
	{ID: 618, Name: "WEST COVINA"},
	{ID: 611, Name: "WESTMINSTER"},
	{ID: 591, Name: "WHITTIER"},
	{ID: 571, Name: "WILLOWS"},
	{ID: 637, Name: "WINNETKA"},
	{ID: 561, Name: "WOODLAND"},
	{ID: 552, Name: "YREKA"},
	{ID: 562, Name: "YUBA CITY"},
}
