package reconcile

// fighterAssetFiles are the bundled fighter images under /assets/fighters.
var fighterAssetFiles = []string{
	"7c76e7f9-1248-4c83-84d4-e9afba9f5247%2FDAUKAUS_KYLE_L_06-18.avif",
	"ALENCAR_TALITA_L_12-09.avif",
	"AMIL_HYDER_L_06-28.avif",
	"ARDELEAN_ALICE_R_07-27.avif",
	"BARCELOS_RAONI_R_06-14.avif",
	"BLANCHFIELD_ERIN_L_05-31.avif",
	"BONFIM_GABRIEL_L_07-25.avif",
	"BONFIM_ISMAEL_R_11-04.avif",
	"BRADY_SEAN_L_09-07.avif",
	"BROWN_RANDY_R_06-01.avif",
	"BUENO_SILVA_MAYRA_L_06-29.avif",
	"CARNELOSSI_ARIANE_R_05-18.avif",
	"CAVALCANTI_JACQUELINE_R_02-15.avif",
	"CHRISTIAN_KEVIN_L_09-24.avif",
	"CORTES-ACOSTA_WALDO_L_03-15.avif",
	"CORTEZ_TRACY_R_06-28.avif",
	"CUAMBA_TIMOTHY_L_04-26.avif",
	"DARIUSH_BENEIL_L_06-28.avif",
	"DELIJA_ANTE_R_09-06.avif",
	"DELLA_MADDALENA_JACK_L_BELTMOCK.avif",
	"DELVALLE_YADIER_R_10-15.avif",
	"DULGARIAN_ISAAC_L_09-07.avif",
	"DUMAS_SEDRIQUES_R_06-24.avif",
	"DUMONT_NORMA_R_09-14.avif",
	"DUNCAN_CHRISTIAN_LEROY_L_03-22.avif",
	"EDWARDS_LEON_L_03-22.avif",
	"ELEKANA_BILLY_L_01-18.avif",
	"EMMERS_JAMALL_R_03-30.avif",
	"ESTEVAM_RAFAEL_R_11-18.avif",
	"FRUNZA_DANIEL_R_04-05.avif",
	"GARCIA_STEVE_L_09-07.avif",
	"GOMES_DENISE_R_05-17.avif",
	"GORIMBO_THEMBA_R_12-07.avif",
	"HADDON_CODY_R_10-12.avif",
	"HILL_ANGELA_L_02-15.avif",
	"HOKIT_JOSH_L_08-19.avif",
	"JOHNS_MILES_L_08-09.avif",
	"JOHNSON_DONTE_L_08-26.avif",
	"KLINE_FATIMA_R_07-13.avif",
	"KO_SEOKHYEON_L_06-21.avif",
	"KOPYLOV_ROMAN_L_01-11.avif",
	"LEE_CHANGHO_R_04-05.avif",
	"MAKHACHEV_ISLAM_R_10-22.avif",
	"MARCOS_DANIEL_R_05-03.avif",
	"MARISCAL_CHEPE_R_03-01.avif",
	"MCCONICO_ERIC_R_08-09.avif",
	"MCVEY_JACKSON_R_07-19.avif",
	"MEDIC_UROS_R_01-11.avif",
	"MEERSCHAERT_GERALD_R_04-05.avif",
	"MORALES_JOSEPH_R_08-16.avif",
	"MORALES_MICHAEL_R_05-17.avif",
	"NASCIMENTO_ALLAN_L_01-14.avif",
	"NICKAL_BO_L_11-16.avif",
	"ONAMA_DAVID_R_04-26.avif",
	"PADILLA_CHRIS_L_04-27.avif",
	"PENNINGTON_TECIA_L_05-17.avif",
	"PRATES_CARLOS_R_08-16.avif",
	"RADTKE_CHARLES_L_06-08.avif",
	"ROWE_PHIL_L_06-14.avif",
	"RUIZ_MONTSERRAT_CONEJO_R_11-04.avif",
	"SABATINI_PAT_L_04-05.avif",
	"SAINT_DENIS_BENOIT_R_09-28.avif",
	"SALIKHOV_MUSLIM_L_07-26.avif",
	"SCHNELL_MATT_L_04-26.avif",
	"SHADOW_Fighter_fullLength_BLUE.avif",
	"SHEVCHENKO_VALENTINA_BELT_L_05-10.avif",
	"SIMON_RICKY_L_06-14.avif",
	"SUSURKAEV_BAYSANGUR_L_08-16.avif",
	"TULIO_MARCO_R_04-12.avif",
	"VALENTIN_ROBERT_R_07-19.avif",
	"VIEIRA_KETLEN_L_05-31.avif",
	"VIEIRA_RODOLFO_R_04-29.avif",
	"WEILI_ZHANG_R_06-11.avif",
	"WELLMAN_MALCOLM_L_06-14.avif",
	"WELLS_JEREMIAH_L_08-05.avif",
	"ABDUL-MALIK_MANSUR_L_06-14.avif",
	"ALIEV_NURULLO_L_01-11.avif",
	"ALMABAYEV_ASU_R_03-01.avif",
	"ALMAKHAN_BEZKAT_L_03-02.avif",
	"ALMEIDA_CESAR_L_01-11.avif",
	"ASLAN_IBO_R_02-22.avif",
	"BAGHDASARYAN_MELSIK_R_02-22.avif",
	"BARANIEWSKI_IWO_R_09-16.avif",
	"BARBER_MAYCEE_L_03-09.avif",
	"BARBOZA_EDSON_L_08-16.avif",
	"BLACHOWICZ_JAN_L_03-22.avif",
	"BRITO_JOANDERSON_L_07-01.avif",
	"BUCHECHA_MARCUS_R_07-26.avif",
	"CEJUDO_HENRY_L_02-22.avif",
	"CERQUEIRA_RAFAEL_R_08-09.avif",
	"CHARRIERE_MORGAN_R_07-12.avif",
	"CHIKADZE_GIGA_L_04-26.avif",
	"COSTA_MELQUIZAEL_L_06-15.avif",
	"CRODEN_MELISSA_L_10-18.avif",
	"DALBY_NICOLAS_L_06-17.avif",
	"DAWSON_GRANT_L_01-18.avif",
	"DUNCAN_CHRIS_R_08-02.avif",
	"DVALISHVILI_MERAB_L_BELT_10-04.avif",
	"FERREIRA_BRUNNO_R_10-26.avif",
	"GAZIEV_SHAMIL_R_03-02.avif",
	"GRAD_BOGDAN_L_02-01.avif",
	"GUSKOV_BOGDAN_R_07-26.avif",
	"HERMANSSON_JACK_L_06-28.avif",
	"HOOKER_DAN_R_08-17.avif",
	"HORTH_JAMEY_LYN_L_06-14.avif",
	"KAPE_MANEL_R_07-27.avif",
	"LEMOS_AMANDA_L_03-08.avif",
	"LODER_RYAN_R_08-24.avif",
	"MACHADO_GARRY_IAN_R_12-07.avif",
	"MCKINNEY_TERRANCE_L_06-28.avif",
	"MENIFIELD_ALONZO_R_08-03.avif",
	"MORENO_BRANDON_L_03-29.avif",
	"MUHAMMAD_BELAL_L_05-06.avif",
	"NAIMOV_MUHAMMAD_L_06-21.avif",
	"NAURDIEV_ISMAIL_L_06-21.avif",
	"NZECHUKWU_KENNEDY_L_07-12.avif",
	"OEZDEMIR_VOLKAN_L_11-23.avif",
	"OLEKSIEJZCUK_CEZARY_R_09-02.avif",
	"OROLBAI_MYKTYBEK_R_06-21.avif",
	"PANTOJA_ALEXANDRE_L_BELT_06-28.avif",
	"PEREZ_ALEX_L_06-15.avif",
	"ROBERTSON_GILLIAN_R_05-03.avif",
	"ROYVAL_BRANDON_L_06-28.avif",
	"SADYKHOV_NAZIM_L_06-21.avif",
	"SANTOS_LUANA_R_08-17.avif",
	"SANTOS_MAIRON_R_05-17.avif",
	"SILVA_KARINE_R_11-16.avif",
	"SPIVAC_SERGHEI_L_06-07.avif",
	"TAIRA_TATSURO_R_10-12.avif",
	"TALBOTT_PAYTON_R_01-18.avif",
	"TOPURIA_ALEKSANDRE_R_02-08.avif",
	"TORRES_MANUEL_R_06-17.avif",
	"TROCOLI_ANTONIO_R_11-09.avif",
	"TSARUKYAN_ARMAN_L_01-18.avif",
	"TURNER_JALIN_R_12-02.avif",
	"ULANBEKOV_TAGIR_L_06-21.avif",
	"VALLEJOS_KEVIN_R_08-02.avif",
	"VAN_JOSHUA_R_06-28.avif",
	"VETTORI_MARVIN_L_07-19.avif",
	"YAKHYAEV_ABDUL-RAKHMAN_L_08-26.avif",
	"YAN_PETR_R_03-09.avif",
	"ZIAM_FARES_R_02-24.avif",
	"BLEDA_TEREZA_R_06-17.avif",
}
